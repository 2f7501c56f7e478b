package console

import (
	"fmt"
	"io"

	"gallery-analytics-service/internal/smoke/core/domain"

	"github.com/charmbracelet/lipgloss"
)

type Reporter struct {
	w     io.Writer
	title lipgloss.Style
	pass  lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
}

func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:     w,
		title: r.NewStyle().Bold(true),
		pass:  r.NewStyle().Foreground(lipgloss.Color("#51cf66")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("#fcc419")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#6c757d")),
	}
}

func (r *Reporter) status(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusPass:
		return r.pass
	case domain.StatusPartial:
		return r.warn
	default:
		return r.fail
	}
}

func (r *Reporter) Print(rep *domain.Report) {
	if !rep.Ready {
		fmt.Fprintln(r.w, r.warn.Render("Services may not be fully ready, results below may be unreliable"))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.title.Render("Test Results Summary:"))
	fmt.Fprintln(r.w, r.dim.Render("========================"))

	for _, c := range rep.Results {
		line := fmt.Sprintf("%s: %s", c.Name, c.Status)
		if c.Detail != "" {
			line += " - " + c.Detail
		}
		fmt.Fprintln(r.w, r.status(c.Status).Render(line))
		if c.Err != "" {
			fmt.Fprintln(r.w, r.fail.Render("   Error: "+c.Err))
		}
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.title.Render(fmt.Sprintf("Overall: %d/%d tests passed", rep.Passed(), len(rep.Results))))
	if rep.AllPassed() {
		fmt.Fprintln(r.w, r.pass.Render("All tests passed! The Foreign Exploration Gallery is working perfectly!"))
	} else {
		fmt.Fprintln(r.w, r.warn.Render("Some tests failed. Please check the application setup."))
	}
}
