package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"conduit/cli/internal/api"
	"conduit/cli/internal/httperrors"
	"conduit/cli/internal/logging"
	"conduit/cli/internal/terminal"
)

// startInlineSpinner starts a simple inline spinner animation on a single
// line. It displays rotating animation frames followed by the provided text,
// updating the same line in the terminal. The spinner runs in a separate
// goroutine and can be stopped by calling the returned function.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// withSpinner hides the cursor and runs fn behind an inline spinner.
func withSpinner(text string, fn func() error) error {
	cursor.Hide()
	defer cursor.Show()

	stop := startInlineSpinner(os.Stderr, text, []string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	defer stop()
	return fn()
}

// promptLine reads one trimmed line from stdin after printing the label.
// The raw prompt is erased afterwards and re-printed tidied up.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	value := strings.TrimSpace(line)
	terminal.ClearPreviousLines(len(label) + 2 + len(value))
	fmt.Printf("%s: %s\n", label, value)
	return value, nil
}

// promptPassword reads a password without echoing it.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// renderAPIError presents an operation failure. Validation errors print their
// field map the way the forms show them; everything else goes through the
// friendly network-error presenter. Sensitive values are masked either way.
func renderAPIError(err error, context string) error {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]string, 0, len(vErr.Errors))
		for f := range vErr.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			pterm.Error.Printf("%s %s\n", f, logging.Mask(strings.Join(vErr.Errors[f], ", ")))
		}
		return err
	}
	return httperrors.FormatNetworkError(err, context)
}
