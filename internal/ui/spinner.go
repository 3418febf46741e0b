package ui

import (
	"fmt"
	"image/color"
	"io"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	dotFrames = []string{"⣾ ", "⣽ ", "⣻ ", "⢿ ", "⡿ ", "⣟ ", "⣯ ", "⣷ "}
	dotFPS    = time.Second / 10

	// geminiBlue is the default spinner color.
	geminiBlue = lipgloss.Color("#4285F4")
)

// Spinner is an animated loading indicator. It redraws a single line on its
// writer, which should be a terminal, from a background goroutine.
type Spinner struct {
	w       io.Writer
	message string
	frames  []string
	fps     time.Duration
	color   color.Color

	done    chan struct{}
	exited  chan struct{}
	start   sync.Once
	stop    sync.Once
	started bool
}

// NewSpinner creates a spinner that writes message to w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		frames:  dotFrames,
		fps:     dotFPS,
		color:   geminiBlue,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Start begins the animation. Calling Start more than once has no effect.
func (s *Spinner) Start() {
	s.start.Do(func() {
		s.started = true
		go s.run()
	})
}

// Stop halts the animation and blocks until the line has been cleared. It is
// safe to call Stop on a spinner that was never started.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.done)
		if s.started {
			<-s.exited
		}
	})
}

func (s *Spinner) run() {
	defer close(s.exited)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(s.color).
		Bold(true)
	messageStyle := lipgloss.NewStyle().
		Italic(true)

	ticker := time.NewTicker(s.fps)
	defer ticker.Stop()

	var frame int
	for {
		select {
		case <-s.done:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			f := s.frames[frame%len(s.frames)]
			fmt.Fprintf(s.w, "\r %s %s",
				spinnerStyle.Render(f),
				messageStyle.Render(s.message))
			frame++
		}
	}
}
