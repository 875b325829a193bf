package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Time     float64 // game time in seconds
	Category string  // spawn, kill, gem, potion_pickup, potion_drink, buff_end, level_up, upgrade, wave, state, player_hit, run_start, game_over
	Detail   string  // human-readable specifics (enemy type, upgrade label, ...)
	Num      float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[t=012.3] kill       walker (7.0)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[t=%05.1f] %-14s %s (%.1f)", e.Time, e.Category, e.Detail, e.Num)
}

// SimLog collects structured events during a headless simulation. It is
// unbounded and machine-readable; the interactive game runs without one.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick snapshot
// entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(time float64, category, detail string, num float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Time:     time,
		Category: category,
		Detail:   detail,
		Num:      num,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(time float64, category, detail string, num float64) {
	if !sl.verbose {
		return
	}
	sl.Add(time, category, detail, num)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category. Pass empty string
// to match all.
func (sl *SimLog) Filter(category string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTimeRange returns entries within [from, to] inclusive.
func (sl *SimLog) FilterTimeRange(from, to float64) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Time >= from && e.Time <= to {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the category.
func (sl *SimLog) Count(category string) int {
	return len(sl.Filter(category))
}

// LastOf returns the most recent entry matching the category, or false
// if none.
func (sl *SimLog) LastOf(category string) (SimLogEntry, bool) {
	entries := sl.Filter(category)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category and a
// detail substring.
func (sl *SimLog) HasEntry(category, detailSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if detailSubstr != "" && !strings.Contains(e.Detail, detailSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a time range.
func (sl *SimLog) FormatRange(from, to float64) string {
	var sb strings.Builder
	for _, e := range sl.FilterTimeRange(from, to) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
