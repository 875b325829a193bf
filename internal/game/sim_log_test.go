package game

import (
	"strings"
	"testing"
)

func TestSimLogFilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1.0, "kill", "walker", 1)
	sl.Add(2.0, "kill", "tank", 2)
	sl.Add(2.5, "gem", "5", 5)

	if sl.Count("kill") != 2 {
		t.Fatalf("kill count %d, want 2", sl.Count("kill"))
	}
	if len(sl.Filter("")) != 3 {
		t.Fatal("empty category should match all")
	}
	last, ok := sl.LastOf("kill")
	if !ok || last.Detail != "tank" {
		t.Fatalf("LastOf(kill) = %+v, %v", last, ok)
	}
	if !sl.HasEntry("gem", "5") || sl.HasEntry("gem", "walker") {
		t.Fatal("HasEntry substring match broken")
	}
}

func TestSimLogVerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "tick", "", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entry recorded on a quiet log")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "tick", "", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entry dropped on a verbose log")
	}
}

func TestSimLogTimeRange(t *testing.T) {
	sl := NewSimLog(false)
	for i := 0; i < 10; i++ {
		sl.Add(float64(i), "tick", "", 0)
	}
	if got := len(sl.FilterTimeRange(3, 6)); got != 4 {
		t.Fatalf("range [3,6] matched %d entries, want 4", got)
	}
	if !strings.Contains(sl.FormatRange(3, 3), "t=003.0") {
		t.Fatalf("FormatRange output: %q", sl.FormatRange(3, 3))
	}
}

func TestSimLogEntryFormat(t *testing.T) {
	e := SimLogEntry{Time: 12.34, Category: "kill", Detail: "walker", Num: 7}
	s := e.String()
	if !strings.Contains(s, "t=012.3") || !strings.Contains(s, "kill") || !strings.Contains(s, "walker") {
		t.Fatalf("entry format %q", s)
	}
}
