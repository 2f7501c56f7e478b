package console

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"gallery-analytics-service/internal/loadtest/core/domain"
)

// ------------------------------------------------------------
// PROGRESS
// ------------------------------------------------------------

func TestProgress_CountsToTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)

	p.Start(4)
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Increment()
		}()
	}
	wg.Wait()
	p.Stop()

	out := buf.String()
	if !strings.Contains(out, "0/4 users") {
		t.Fatalf("expected initial line, got %q", out)
	}
	if !strings.Contains(out, "4/4 users") {
		t.Fatalf("expected final line, got %q", out)
	}
	if strings.Contains(out, "5/4") {
		t.Fatalf("progress must not exceed total: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline after Stop")
	}
}

// ------------------------------------------------------------
// SUMMARY
// ------------------------------------------------------------

func TestReporter_RunSummary(t *testing.T) {
	run := &domain.RunResult{
		TestSummary: domain.TestSummary{
			TotalUsers:         2,
			TotalRequests:      4,
			SuccessfulRequests: 3,
			FailedRequests:     1,
			TotalDuration:      2500,
		},
		ServerStats: map[string]domain.ServerStat{
			"S1":               {Requests: 2, TotalResponseTime: 40},
			"S2":               {Requests: 1, TotalResponseTime: 30},
			domain.ServerError: {Requests: 1, Errors: 1},
		},
		BehaviorStats: map[domain.Behavior]domain.BehaviorStat{
			domain.APIUser: {Count: 2, TotalRequests: 4, AvgDuration: 1500},
		},
		UserSessions: []domain.UserSession{
			{Requests: []domain.RequestOutcome{
				{Success: true, ResponseTime: 10, ServerID: "S1"},
				{Success: true, ResponseTime: 30, ServerID: "S1"},
			}},
			{Requests: []domain.RequestOutcome{
				{Success: true, ResponseTime: 30, ServerID: "S2"},
				{Success: false, ServerID: domain.ServerError},
			}},
		},
		Errors: []string{"User 2: connection refused"},
	}

	var buf bytes.Buffer
	NewReporter(&buf).RunSummary(run)
	out := buf.String()

	for _, want := range []string{
		"Total Test Duration: 2.50s",
		"Successful Requests: 3 (75.0%)",
		"Failed Requests: 1 (25.0%)",
		"Average Response Time: 23.33ms",
		"Fastest Response: 10ms",
		"Slowest Response: 30ms",
		"S1: 2 requests (avg: 20.00ms)",
		"error: 1 failed requests",
		"api_user: 2 users, avg 2.0 requests, avg 1.50s session",
		"User 2: connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "S1:") > strings.Index(out, "S2:") {
		t.Fatalf("servers should be listed in sorted order")
	}
}

func TestReporter_ErrorListIsCapped(t *testing.T) {
	run := &domain.RunResult{}
	for i := 0; i < 12; i++ {
		run.Errors = append(run.Errors, "boom")
	}

	var buf bytes.Buffer
	NewReporter(&buf).RunSummary(run)

	if got := strings.Count(buf.String(), "boom"); got != maxPrintedErrors {
		t.Fatalf("expected %d printed errors, got %d", maxPrintedErrors, got)
	}
	if !strings.Contains(buf.String(), "... and 2 more") {
		t.Fatalf("expected overflow line")
	}
}

func TestReporter_Banner(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf)
	rep.Banner(25, "http://localhost:3000", time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	rep.Failed(errors.New("target unreachable"))

	out := buf.String()
	for _, want := range []string{"Simulating 25 concurrent users", "Target: http://localhost:3000", "09:30:00", "target unreachable"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
