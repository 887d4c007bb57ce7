package animico

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestDebugMode_TickLog(t *testing.T) {
	s := NewScheduler()
	s.SetDebugMode(true)
	b := &box{}
	mustSchedule(t)(ScheduleFloat(s, b, b.get, b.set, 1, 1, nil, nil))

	out := captureStderr(t, func() {
		s.Tick(-1)
		s.Tick(0.5)
	})
	if !strings.Contains(out, "[animico] warning: invalid frame delta") {
		t.Errorf("expected delta warning, got %q", out)
	}
	if !strings.Contains(out, "[animico] tick:") || !strings.Contains(out, "active: 1") {
		t.Errorf("expected tick stats line, got %q", out)
	}
}

func TestReleaseMode_NoOutput(t *testing.T) {
	s := NewScheduler()
	b := &box{}
	mustSchedule(t)(ScheduleFloat(s, b, b.get, b.set, 1, 1, nil, nil))
	out := captureStderr(t, func() { s.Tick(-1) })
	if out != "" {
		t.Errorf("expected no output outside debug mode, got %q", out)
	}
}

func TestDebugMode_ActiveCountWarning(t *testing.T) {
	out := captureStderr(t, func() {
		debugCheckActiveCount(debugMaxActive + 1)
	})
	if !strings.Contains(out, "active tweens") {
		t.Errorf("expected active count warning, got %q", out)
	}

	out = captureStderr(t, func() {
		debugCheckActiveCount(debugMaxActive)
	})
	if out != "" {
		t.Errorf("expected no warning at the threshold, got %q", out)
	}
}

func TestDebugMode_ElapsedMeasured(t *testing.T) {
	s := NewScheduler()
	s.SetDebugMode(true)
	b := &box{}
	mustSchedule(t)(ScheduleFloat(s, b, b.get, b.set, 1, 1, nil, nil))
	captureStderr(t, func() { s.Tick(0.1) })
	if s.Stats().Elapsed < 0 {
		t.Errorf("Elapsed = %v, want >= 0", s.Stats().Elapsed)
	}

	s.SetDebugMode(false)
	s.Tick(0.1)
	if s.Stats().Elapsed != 0 {
		t.Errorf("Elapsed = %v outside debug mode, want 0", s.Stats().Elapsed)
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr
	out, _ := io.ReadAll(r)
	return string(out)
}
