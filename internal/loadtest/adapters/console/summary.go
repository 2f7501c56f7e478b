package console

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	analytics "gallery-analytics-service/internal/analytics/core/domain"
	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/usecase"

	"github.com/charmbracelet/lipgloss"
)

const maxPrintedErrors = 10

// Reporter prints run banners and summaries. Colours degrade to plain text
// when w is not a terminal.
type Reporter struct {
	w io.Writer

	heading lipgloss.Style
	rule    lipgloss.Style
	info    lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warn    lipgloss.Style
	server  lipgloss.Style
	users   lipgloss.Style
}

func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#51cf66")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#6c757d")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#4dabf7")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#51cf66")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#fcc419")),
		server:  r.NewStyle().Foreground(lipgloss.Color("#3bc9db")),
		users:   r.NewStyle().Foreground(lipgloss.Color("#cc5de8")),
	}
}

func (r *Reporter) println(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(r.w, style.Render(fmt.Sprintf(format, args...)))
}

func (r *Reporter) ruleLine() {
	fmt.Fprintln(r.w, r.rule.Render(strings.Repeat("=", 60)))
}

func (r *Reporter) Banner(totalUsers int, target string, started time.Time) {
	r.println(r.heading, "Starting load test for Foreign Exploration Gallery")
	r.ruleLine()
	r.println(r.warn, "Simulating %d concurrent users", totalUsers)
	r.println(r.warn, "Target: %s", target)
	r.println(r.warn, "Started at: %s", started.Format(time.TimeOnly))
	fmt.Fprintln(r.w)
}

// RunSummary prints totals, response times, server distribution and the
// per-behaviour breakdown of a finished run.
func (r *Reporter) RunSummary(run *domain.RunResult) {
	s := usecase.Summarize(run)

	fmt.Fprintln(r.w)
	r.println(r.heading, "LOAD TEST RESULTS")
	r.ruleLine()
	r.println(r.info, "Total Test Duration: %.2fs", s.Duration.Seconds())
	r.println(r.info, "Total Users Simulated: %d", s.TotalUsers)
	r.println(r.info, "Total Requests Made: %d", s.TotalRequests)
	r.println(r.good, "Successful Requests: %d (%.1f%%)", s.Successful, s.SuccessPercent)
	r.println(r.bad, "Failed Requests: %d (%.1f%%)", s.Failed, s.FailedPercent)

	if s.HasTimings {
		fmt.Fprintln(r.w)
		r.println(r.warn.Bold(true), "RESPONSE TIME ANALYSIS")
		r.println(r.warn, "Average Response Time: %.2fms", s.AvgMS)
		r.println(r.warn, "Fastest Response: %dms", s.MinMS)
		r.println(r.warn, "Slowest Response: %dms", s.MaxMS)
	}

	fmt.Fprintln(r.w)
	r.println(r.server.Bold(true), "SERVER LOAD DISTRIBUTION")
	for _, id := range sortedKeys(run.ServerStats) {
		stat := run.ServerStats[id]
		if id == domain.ServerError {
			r.println(r.bad, "%s: %d failed requests", id, stat.Errors)
			continue
		}
		avg := 0.0
		if stat.Requests > 0 {
			avg = float64(stat.TotalResponseTime) / float64(stat.Requests)
		}
		r.println(r.server, "%s: %d requests (avg: %.2fms)", id, stat.Requests, avg)
	}

	fmt.Fprintln(r.w)
	r.println(r.users.Bold(true), "USER BEHAVIOR ANALYSIS")
	for _, b := range domain.Behaviors {
		stat, ok := run.BehaviorStats[b]
		if !ok {
			continue
		}
		avgRequests := float64(stat.TotalRequests) / float64(stat.Count)
		r.println(r.users, "%s: %d users, avg %.1f requests, avg %.2fs session", b, stat.Count, avgRequests, stat.AvgDuration/1000)
	}

	if len(run.Errors) > 0 {
		fmt.Fprintln(r.w)
		r.println(r.bad.Bold(true), "ERRORS (%d)", len(run.Errors))
		for i, e := range run.Errors {
			if i == maxPrintedErrors {
				r.println(r.bad, "... and %d more", len(run.Errors)-maxPrintedErrors)
				break
			}
			r.println(r.bad, "%s", e)
		}
	}
}

func (r *Reporter) Saved(location string) {
	fmt.Fprintln(r.w)
	r.println(r.good, "Detailed results saved to: %s", location)
}

func (r *Reporter) SnapshotSaved(snap *analytics.Snapshot) {
	r.println(r.good, "Analytics snapshot saved (%d requests, %d page views)", snap.Overview.TotalRequests, snap.Overview.TotalPageViews)
}

func (r *Reporter) SnapshotFailed(err error) {
	r.println(r.warn, "Could not capture analytics snapshot: %v", err)
}

func (r *Reporter) Failed(err error) {
	r.println(r.bad, "Load test failed: %v", err)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
