// Package paint writes render plans to a terminal.
package paint

import (
	"scrollpage/internal/ui/viewmodels"
)

// Sink receives frames. The pager and the scroller only talk to a Sink, so
// they never know which backend draws.
type Sink interface {
	// Paint draws one frame
	Paint(frame viewmodels.Frame) error
	// Close leaves the terminal the way the session found it
	Close() error
}

// Newline ends every line written by the ANSI sinks. Raw mode turns off
// output post-processing, so a bare LF would not return the carriage.
const Newline = "\r\n"
