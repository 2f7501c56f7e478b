package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_UnreachableTargetExitsNonZero(t *testing.T) {
	t.Setenv("APP_SMOKE_RETRIES", "0")
	t.Setenv("APP_REQUEST_TIMEOUT_MS", "500")

	var out bytes.Buffer
	if code := run([]string{"-target", "http://127.0.0.1:1"}, &out); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Overall: 0/4 tests passed") {
		t.Fatalf("expected failing summary, got %q", out.String())
	}
}
