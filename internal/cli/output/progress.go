package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar shows how many of a known number of steps are done.
type ProgressBar struct {
	w       io.Writer
	title   string
	total   int
	current int
	width   int
	mu      sync.Mutex
}

// NewProgressBar creates a new progress bar over total steps.
func NewProgressBar(w io.Writer, title string, total int) *ProgressBar {
	return &ProgressBar{
		w:     w,
		title: title,
		total: total,
		width: 30,
	}
}

// Step marks one more step done and labels it.
func (p *ProgressBar) Step(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < p.total {
		p.current++
	}
	p.render(label)
}

// Finish completes the bar and ends the line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render("done")
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) render(label string) {
	percent := 1.0
	if p.total > 0 {
		percent = float64(p.current) / float64(p.total)
	}

	filled := int(float64(p.width) * percent)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", p.width-filled)

	// \033[K clears what a longer previous label left behind.
	fmt.Fprintf(p.w, "\r%s [%s] %d/%d %s\033[K", p.title, bar, p.current, p.total, label)
}
