// Package progress provides a cosmetic status indicator for long operations.
//
// The indicator only writes human-readable text; it never reads or mutates
// domain data, and callers must not depend on its timing. Stop blocks until
// the background goroutine has terminated, so output written afterwards
// cannot interleave with spinner frames.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Reporter is injected wherever a long operation wants to show status.
type Reporter interface {
	// Start begins indicating progress for the labeled operation.
	Start(label string)
	// Stop ends the indication and waits for it to finish rendering.
	Stop()
}

// Nop is a Reporter that does nothing, for tests and quiet mode.
type Nop struct{}

func (Nop) Start(string) {}
func (Nop) Stop()        {}

// Spinner renders a rotating character next to the operation label, in the
// style of the original tool.
type Spinner struct {
	W        io.Writer
	Interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

var frames = [...]byte{'-', '\\', '|', '/'}

// Start begins spinning. Calling Start while already spinning is a no-op.
func (s *Spinner) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}

	interval := s.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	fmt.Fprintf(s.W, "%s:  ", label)

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-stop:
				fmt.Fprintf(s.W, "\b Done\n")
				return
			case <-ticker.C:
				fmt.Fprintf(s.W, "\b%c", frames[i%len(frames)])
				i++
			}
		}
	}(s.stop, s.done)
}

// Stop signals the spinner and joins the background goroutine before
// returning. Safe to call when not started.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}
