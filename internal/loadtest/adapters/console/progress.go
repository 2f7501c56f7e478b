package console

import (
	"fmt"
	"io"
	"sync"

	"gallery-analytics-service/internal/loadtest/core/ports"

	"github.com/charmbracelet/bubbles/progress"
)

// Progress redraws a single progress line as users finish.
type Progress struct {
	mu    sync.Mutex
	w     io.Writer
	bar   progress.Model
	total int
	done  int
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{
		w: w,
		bar: progress.New(
			progress.WithScaledGradient("#ff6b6b", "#51cf66"),
			progress.WithWidth(40),
		),
	}
}

var _ ports.ProgressPort = (*Progress)(nil)

func (p *Progress) Start(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.total = total
	p.done = 0
	p.render()
}

func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done < p.total {
		p.done++
	}
	p.render()
}

func (p *Progress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)
}

func (p *Progress) render() {
	pct := 0.0
	if p.total > 0 {
		pct = float64(p.done) / float64(p.total)
	}
	fmt.Fprintf(p.w, "\rProgress %s %d/%d users", p.bar.ViewAs(pct), p.done, p.total)
}
