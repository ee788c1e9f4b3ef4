// Package navigation models the routes the client redirects to when an
// operation needs a different place in the application: home after logout,
// login or registration when an anonymous user triggers a gated action.
// The gate and controls only name the destination; rendering the redirect
// belongs to the caller.
package navigation

import "github.com/pterm/pterm"

// Route is a navigation destination.
type Route string

const (
	RouteHome     Route = "home"
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
)

// Navigator performs a navigation to the given route.
type Navigator interface {
	NavigateTo(route Route)
}

// Console is the CLI Navigator: a terminal has no router, so a redirect
// becomes printed guidance toward the equivalent command.
type Console struct{}

func (Console) NavigateTo(route Route) {
	switch route {
	case RouteLogin:
		pterm.Info.Println("You need to be logged in. Run 'conduit login' to continue.")
	case RouteRegister:
		pterm.Info.Println("No account yet? Run 'conduit register' to create one.")
	case RouteHome:
		pterm.Info.Println("Run 'conduit articles' to browse the feed.")
	}
}

// Recorder captures navigations for tests.
type Recorder struct {
	Routes []Route
}

func (r *Recorder) NavigateTo(route Route) {
	r.Routes = append(r.Routes, route)
}
