package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Spinner animation frames
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner shows an animated line while something short-lived runs, such as
// the reachability probe. It satisfies session.Indicator.
type Spinner struct {
	mu           sync.Mutex
	out          io.Writer
	renderer     *lipgloss.Renderer
	color        lipgloss.Color
	label        string
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	running      bool
	lastRendered string
}

// NewSpinner creates a spinner that draws on w in color.
func NewSpinner(w io.Writer, color lipgloss.Color) *Spinner {
	return &Spinner{
		out:      w,
		renderer: NewRenderer(w),
		color:    color,
	}
}

// Start begins the animation with label. Calling Start on a running spinner
// only updates the label.
func (s *Spinner) Start(label string) {
	s.mu.Lock()
	s.label = label
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.frame = 0
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go s.animate()
}

// Stop halts the animation. On success the line is erased so the session
// output starts clean; on failure a ✗ line with the elapsed time remains.
func (s *Spinner) Stop(ok bool) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	if !ok {
		fmt.Fprintf(s.out, "%s %s %s\n",
			s.renderer.NewStyle().Foreground(ColorError).Render(SymbolFail),
			s.label,
			s.renderer.NewStyle().Foreground(ColorMuted).Render(formatDuration(time.Since(s.startTime))))
	}
}

// Running reports whether the animation is active.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := s.renderer.NewStyle().Foreground(s.color).Render(spinnerFrames[s.frame])
	line := fmt.Sprintf("%s %s...", symbol, s.label)

	s.clearLocked()
	fmt.Fprint(s.out, line)
	s.lastRendered = line
}

func (s *Spinner) clearLocked() {
	if s.lastRendered == "" {
		return
	}
	clearLen := lipgloss.Width(s.lastRendered)
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", clearLen)+"\r")
	s.lastRendered = ""
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
