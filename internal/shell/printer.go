package shell

import (
	"io"
	"log"
	"sync"

	"reportboard/client/internal/controller"
	"reportboard/client/internal/render"
)

// Printer is the terminal Notifier. It serialises writes because the
// controller may notify from two goroutines during start-up.
type Printer struct {
	mu  sync.Mutex
	Out io.Writer
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) Alert(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := render.Alert(p.Out, msg); err != nil {
		log.Printf("ERROR: writing alert: %v", err)
	}
}

func (p *Printer) UserChanged(status controller.UserStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := render.Status(p.Out, status); err != nil {
		log.Printf("ERROR: writing user status: %v", err)
	}
}

// write runs fn with the output locked.
func (p *Printer) write(fn func(w io.Writer) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := fn(p.Out); err != nil {
		log.Printf("ERROR: writing output: %v", err)
	}
}
