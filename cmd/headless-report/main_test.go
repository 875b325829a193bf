package main

import (
	"strings"
	"testing"

	"github.com/Harrower/Duskwave/internal/game"
)

func TestVerdict_OverrunOnEarlyDeath(t *testing.T) {
	last := game.SimReport{Time: 45, Level: 3, KillCount: 30}
	v, reason := verdict(last, true, 120)
	if v != "overrun" {
		t.Fatalf("expected overrun, got %s (%s)", v, reason)
	}
	if !strings.Contains(reason, "died at 45s") {
		t.Fatalf("reason should name the death time, got: %s", reason)
	}
}

func TestVerdict_StarvedOnLowKillRate(t *testing.T) {
	last := game.SimReport{Time: 120, Level: 5, KillCount: 10} // 0.08 kills/s
	v, reason := verdict(last, false, 120)
	if v != "starved" {
		t.Fatalf("expected starved, got %s (%s)", v, reason)
	}
	if !strings.Contains(reason, "kills/s") {
		t.Fatalf("reason should name the kill rate, got: %s", reason)
	}
}

func TestVerdict_StarvedWithoutEarlyLevel(t *testing.T) {
	last := game.SimReport{Time: 90, Level: 1, KillCount: 40}
	v, reason := verdict(last, false, 120)
	if v != "starved" {
		t.Fatalf("expected starved, got %s (%s)", v, reason)
	}
}

func TestVerdict_SteadyOnHealthyRun(t *testing.T) {
	last := game.SimReport{Time: 120, Level: 6, KillCount: 80}
	v, reason := verdict(last, false, 120)
	if v != "steady" || reason != "" {
		t.Fatalf("expected steady with no reason, got %s (%s)", v, reason)
	}
}
