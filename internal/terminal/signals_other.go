//go:build !unix

package terminal

import "os"

var terminationSignals = []os.Signal{os.Interrupt}
