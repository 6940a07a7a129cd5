// Package debug provides optional file-based debug logging.
//
// When the LATTICE_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	once sync.Once
	mu   sync.Mutex
	out  *os.File
)

func open() {
	path := os.Getenv("LATTICE_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	out = f
}

// Enabled returns true if debug logging is active.
func Enabled() bool {
	once.Do(open)
	return out != nil
}

// Log appends a formatted message to the debug file. No-op when the
// LATTICE_DEBUG environment variable is unset.
func Log(format string, args ...any) {
	once.Do(open)
	if out == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
