package ui

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Notifier prints user-visible warnings
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier creates a Notifier writing to out (stderr when nil)
func NewNotifier(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stderr
	}
	return &Notifier{out: out}
}

// Warn prints message as a warning
func (n *Notifier) Warn(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	color.New(color.FgYellow).Fprintf(n.out, "⚠ %s\n", message)
}
