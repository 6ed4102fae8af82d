package domain

import "testing"

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{363599, "100:59:59"},
	}
	for _, tc := range tests {
		if got := Format(tc.seconds); got != tc.want {
			t.Fatalf("Format(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestNewStopwatchIsStoppedAtZero(t *testing.T) {
	t.Parallel()
	s := New()
	if s.State() != Stopped || s.Elapsed() != 0 || s.Display() != "00:00:00" {
		t.Fatalf("unexpected initial stopwatch: state=%s elapsed=%d display=%s", s.State(), s.Elapsed(), s.Display())
	}
}

func TestTickOnlyCountsWhileRunning(t *testing.T) {
	t.Parallel()
	s := New()
	if s.Tick(0) {
		t.Fatalf("tick on a stopped stopwatch must not re-arm")
	}
	if s.Elapsed() != 0 {
		t.Fatalf("tick on a stopped stopwatch must not count")
	}

	chain, armed := s.Start()
	if !armed {
		t.Fatalf("first start must arm a chain")
	}
	for i := 0; i < 3; i++ {
		if !s.Tick(chain) {
			t.Fatalf("tick %d should re-arm", i)
		}
	}
	if s.Display() != "00:00:03" {
		t.Fatalf("expected 00:00:03, got %s", s.Display())
	}

	s.Pause()
	if s.Tick(chain) {
		t.Fatalf("tick after pause must not re-arm")
	}
	if s.Display() != "00:00:03" {
		t.Fatalf("pause must keep elapsed, got %s", s.Display())
	}

	chain, armed = s.Start()
	if !armed {
		t.Fatalf("start after pause must arm a fresh chain")
	}
	s.Tick(chain)
	if s.Display() != "00:00:04" {
		t.Fatalf("expected resume from retained value, got %s", s.Display())
	}

	s.Reset()
	if s.State() != Stopped || s.Display() != "00:00:00" {
		t.Fatalf("reset must stop at zero, got %s %s", s.State(), s.Display())
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	t.Parallel()
	s := New()
	chain, _ := s.Start()
	s.Tick(chain)
	s.Tick(chain)

	again, armed := s.Start()
	if armed {
		t.Fatalf("start while running must not arm another chain")
	}
	if again != chain {
		t.Fatalf("start while running must keep the live chain")
	}
	if s.Elapsed() != 2 {
		t.Fatalf("start while running must not reset, got %d", s.Elapsed())
	}
	s.Tick(chain)
	if s.Elapsed() != 3 {
		t.Fatalf("expected a single increment per tick, got %d", s.Elapsed())
	}
}

func TestStaleChainIsIgnoredAfterQuickRestart(t *testing.T) {
	t.Parallel()
	s := New()
	first, _ := s.Start()
	s.Pause()
	second, _ := s.Start()

	if s.Tick(first) {
		t.Fatalf("tick from the superseded chain must not re-arm")
	}
	if s.Elapsed() != 0 {
		t.Fatalf("tick from the superseded chain must not count, got %d", s.Elapsed())
	}
	if !s.Tick(second) || s.Elapsed() != 1 {
		t.Fatalf("live chain must count, got %d", s.Elapsed())
	}
}

func TestResetFromAnyState(t *testing.T) {
	t.Parallel()
	running := New()
	chain, _ := running.Start()
	running.Tick(chain)

	paused := New()
	chain, _ = paused.Start()
	paused.Tick(chain)
	paused.Pause()

	for name, s := range map[string]*Stopwatch{"fresh": New(), "running": running, "paused": paused} {
		s.Reset()
		if s.Running() || s.Elapsed() != 0 || s.Display() != "00:00:00" {
			t.Fatalf("%s: reset left running=%v elapsed=%d", name, s.Running(), s.Elapsed())
		}
	}
	if running.Tick(chain) {
		t.Fatalf("tick after reset must not re-arm")
	}
}
