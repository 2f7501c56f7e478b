package console

import (
	"fmt"
	"io"
	"strings"

	"gallery-analytics-service/internal/analyzer/core/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	chartWidth  = 60
	chartHeight = 8
)

// Renderer prints a Report section by section.
type Renderer struct {
	w io.Writer

	title   lipgloss.Style
	section lipgloss.Style
	rule    lipgloss.Style
	body    lipgloss.Style
	good    lipgloss.Style
	notice  lipgloss.Style
	bad     lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4dabf7")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#3bc9db")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#6c757d")),
		body:    r.NewStyle().Foreground(lipgloss.Color("#f8f9fa")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#51cf66")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("#fcc419")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
	}
}

func (r *Renderer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(r.w, style.Render(fmt.Sprintf(format, args...)))
}

func (r *Renderer) heading(name string) {
	fmt.Fprintln(r.w)
	r.line(r.section, "%s", name)
	r.line(r.rule, "%s", strings.Repeat("-", 40))
}

func (r *Renderer) Render(rep *domain.Report) {
	r.line(r.title, "DETAILED LOAD TEST ANALYSIS")
	r.line(r.rule, "%s", strings.Repeat("=", 60))

	r.loadBalancing(rep.LoadBalancing)
	r.responseTimes(rep)
	r.journeys(rep)
	if rep.Impact != nil {
		r.impact(rep.Impact)
	}
	r.recommendations(rep)
}

func (r *Renderer) loadBalancing(lb domain.LoadBalancing) {
	r.heading("LOAD BALANCING ANALYSIS")
	if lb.Tier == domain.TierNoData {
		r.line(r.notice, "No successful request reported a server id")
		return
	}

	r.line(r.body, "Request Distribution:")
	for _, s := range lb.Servers {
		r.line(r.body, "   %s: %d requests (%.1f%%) - Avg: %.2fms", s.ServerID, s.Requests, s.SharePercent, s.AvgResponseMS)
	}
	r.line(r.body, "Load Balancing Effectiveness: %.1f%%", lb.Effectiveness)

	switch lb.Tier {
	case domain.TierExcellent:
		r.line(r.good, "Excellent load distribution!")
	case domain.TierGood:
		r.line(r.notice, "Good load distribution with minor imbalance")
	default:
		r.line(r.bad, "Poor load distribution - check load balancer configuration")
	}
}

func (r *Renderer) responseTimes(rep *domain.Report) {
	r.heading("RESPONSE TIME DEEP DIVE")

	r.line(r.body, "Endpoint Performance:")
	for _, e := range rep.Endpoints {
		r.line(r.body, "   %s:", e.Path)
		r.line(r.body, "     Requests: %d", e.Requests)
		r.line(r.body, "     Avg: %.2fms | Min: %dms | Max: %dms", e.AvgMS, e.MinMS, e.MaxMS)
		r.line(r.body, "     95th percentile: %dms", e.P95MS)
	}

	if len(rep.LatencySeries) > 1 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, asciigraph.Plot(rep.LatencySeries,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption("response time (ms) by request"),
		))
	}
}

func (r *Renderer) journeys(rep *domain.Report) {
	r.heading("USER JOURNEY ANALYSIS")

	r.line(r.body, "Most Common User Journeys:")
	for i, j := range rep.Journeys {
		r.line(r.body, "   %d. %s (%d users)", i+1, j.Path, j.Users)
	}

	sw := rep.ServerSwitching
	r.line(r.body, "Server Switching Analysis:")
	r.line(r.body, "   Users who hit multiple servers: %d/%d", sw.Users, sw.TotalUsers)
	if sw.Users > 0 {
		r.line(r.body, "   Average server switches per user: %.1f", sw.AvgSwitches)
	}
}

func (r *Renderer) impact(im *domain.Impact) {
	r.heading("SERVER IMPACT ANALYSIS")

	r.line(r.body, "Website Analytics Impact:")
	r.line(r.body, "   Page Views Generated: %d", im.PageViews)
	r.line(r.body, "   Total Requests Processed: %d", im.TotalRequests)
	r.line(r.body, "   Unique Visitors Recorded: %d", im.UniqueVisitors)
	r.line(r.body, "   Active Sessions: %d", im.ActiveSessions)

	if len(im.MostViewedPhotos) > 0 {
		r.line(r.body, "Photo Engagement:")
		for _, p := range im.MostViewedPhotos {
			r.line(r.body, "   %q: %d views", p.Title, p.Views)
		}
	}

	r.line(r.body, "Performance Metrics:")
	r.line(r.body, "   Requests per second: %.2f RPS", im.RequestsPerSecond)
	r.line(r.body, "   Success rate: %.1f%%", im.SuccessRate)
}

func (r *Renderer) recommendations(rep *domain.Report) {
	r.heading("RECOMMENDATIONS")
	for _, rec := range rep.Recommendations {
		r.line(r.severity(rec.Severity), "%s", rec.Message)
	}

	fmt.Fprintln(r.w)
	r.line(r.section, "OVERALL ASSESSMENT")
	switch rep.Assessment {
	case domain.AssessmentExcellent:
		r.line(r.good, "EXCELLENT - Your system handled the load test perfectly!")
	case domain.AssessmentGood:
		r.line(r.notice, "GOOD - System performed well with minor areas for improvement")
	default:
		r.line(r.bad, "NEEDS ATTENTION - Several areas require optimization")
	}
}

func (r *Renderer) severity(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityOK:
		return r.good
	case domain.SeverityNotice:
		return r.notice
	default:
		return r.bad
	}
}

// Error prints a fatal analysis error with a hint for the common case.
func (r *Renderer) Error(err error, hint string) {
	r.line(r.bad, "Error analyzing results: %v", err)
	if hint != "" {
		r.line(r.notice, "%s", hint)
	}
}
