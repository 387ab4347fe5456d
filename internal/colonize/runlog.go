package colonize

import (
	"fmt"
	"strings"
)

// Run log categories.
const (
	CategoryRun    = "run"
	CategoryGrow   = "grow"
	CategoryAbsorb = "absorb"
)

// RunLogEntry is one recorded event of a run.
type RunLogEntry struct {
	Step     int
	Category string
	Key      string
	Count    int     // entities affected by the event
	Total    float64 // collection size after the event
}

// String formats the entry as a fixed-width log line.
//
//	[S=0042] grow     tips         +3 (total 118)
func (e RunLogEntry) String() string {
	return fmt.Sprintf("[S=%04d] %-8s %-12s %+d (total %.0f)",
		e.Step, e.Category, e.Key, e.Count, e.Total)
}

// RunLog collects structured events emitted by an Engine. It is unbounded and
// intended for headless runs and tests.
type RunLog struct {
	entries []RunLogEntry
}

// NewRunLog creates an empty RunLog.
func NewRunLog() *RunLog { return &RunLog{} }

// Add records a new entry.
func (l *RunLog) Add(step int, category, key string, count int, total float64) {
	l.entries = append(l.entries, RunLogEntry{
		Step:     step,
		Category: category,
		Key:      key,
		Count:    count,
		Total:    total,
	})
}

// Entries returns all recorded entries.
func (l *RunLog) Entries() []RunLogEntry { return l.entries }

// Filter returns entries matching the given category and/or key. Pass an
// empty string to match any value for that field.
func (l *RunLog) Filter(category, key string) []RunLogEntry {
	var out []RunLogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Sum adds up the counts of every entry matching category and key.
func (l *RunLog) Sum(category, key string) int {
	total := 0
	for _, e := range l.Filter(category, key) {
		total += e.Count
	}
	return total
}

// Format returns the full log as a single string.
func (l *RunLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
