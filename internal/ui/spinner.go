package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var frames = []rune{'|', '/', '-', '\\'}

// Spinner shows an animated progress line while a fetch runs. Stage
// messages from the pipeline replace the line in place.
type Spinner struct {
	mu   sync.Mutex
	w    io.Writer
	msg  string
	done chan struct{}
}

// NewSpinner creates a spinner writing to stderr, not yet running.
func NewSpinner() *Spinner {
	return &Spinner{w: os.Stderr}
}

// Start begins the animation with an initial message.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.done = make(chan struct{})
	s.mu.Unlock()
	go s.loop()
}

// Update replaces the message while the spinner runs. Usable as an
// insights.ProgressFunc.
func (s *Spinner) Update(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	s.mu.Unlock()
	fmt.Fprint(s.w, "\r\033[K")
}

func (s *Spinner) loop() {
	tick := time.NewTicker(120 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		s.mu.Lock()
		done, msg := s.done, s.msg
		s.mu.Unlock()
		if done == nil {
			return
		}
		select {
		case <-done:
			return
		case <-tick.C:
			fmt.Fprintf(s.w, "\r\033[K%c %s", frames[i%len(frames)], msg)
		}
	}
}
