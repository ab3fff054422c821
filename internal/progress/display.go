package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display shows an activity indicator while a check runs. On a TTY it
// animates a spinner on stderr; otherwise it prints a plain message.
type Display struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	spinner      *spinner.Spinner
}

// NewDisplay creates a display for the given terminal capabilities.
func NewDisplay(caps TerminalCapabilities) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins showing the activity message.
func (d *Display) Start(msg string) {
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond)
		d.spinner.Writer = os.Stderr // keep stdout clean for results
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Stop stops the spinner if one is running.
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}
