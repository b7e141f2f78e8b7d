package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows the current build stage and elapsed time on one terminal line.
// It stops on Stop or when its context is cancelled.
type Spinner struct {
	w       io.Writer
	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	start   time.Time
	once    sync.Once
	stopped chan struct{}

	mu      sync.Mutex
	stage   string
	started bool
	width   int // widest line drawn, for clearing
}

// newSpinnerWithContext creates a spinner on stderr for the given stage.
func newSpinnerWithContext(ctx context.Context, stage string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		parent:  ctx,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stage:   stage,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.start = time.Now()
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Stage replaces the message shown next to the spinner.
func (s *Spinner) Stage(stage string) {
	s.mu.Lock()
	s.stage = stage
	s.mu.Unlock()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	line := fmt.Sprintf("%s %s", s.stage, elapsed)
	if n := len(line) + 2; n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s %s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.stage), StyleNumber.Render(elapsed.String()))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width+2))
	}
}

// Stop ends the animation, clears the line and returns the elapsed time.
// It is safe to call more than once, and before Start.
func (s *Spinner) Stop() time.Duration {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.stopped
		}
	})
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.start.IsZero() {
		return 0
	}
	return time.Since(s.start)
}

// StopWithSuccess stops the spinner and prints message with the elapsed time.
func (s *Spinner) StopWithSuccess(message string) {
	d := s.Stop()
	printSuccess("%s %s", message, StyleDim.Render("in "+d.Round(time.Millisecond).String()))
}

// StopWithError stops the spinner and prints message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the parent context ended, as opposed to Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
