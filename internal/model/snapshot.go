package model

import (
	"fmt"
	"math"
	"sort"
)

// DailyLog is the in-memory form of one day's work log.
type DailyLog struct {
	Hours float64 `json:"hours"`
	Notes string  `json:"notes"`
}

// Snapshot is a fully resolved view of one internship: header fields plus
// the per-date log map and the derived aggregates. Mutating operations
// return a new snapshot and leave the receiver untouched, so a failed write
// never exposes partial state.
//
// Invariants held after every operation:
//   - CompletedHours == sum of Hours over DailyLogs
//   - WorkDays == set of dates whose log has Hours > 0
//   - a date appears in DailyLogs at most once; zero hours means absent
type Snapshot struct {
	ID             string              `json:"id"`
	Company        string              `json:"company"`
	Position       string              `json:"position"`
	TotalHours     float64             `json:"total_hours"`
	CompletedHours float64             `json:"completed_hours"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	WorkDays       map[string]bool     `json:"work_days"`
	DailyLogs      map[string]DailyLog `json:"daily_logs"`
}

// NewSnapshot assembles a snapshot from a stored internship and its log
// rows. Aggregates are re-derived from the rows rather than trusted from
// the header, so a drifted completed_hours column heals on read.
func NewSnapshot(in Internship, logs []WorkLog) Snapshot {
	s := Snapshot{
		ID:         in.ID,
		Company:    in.Company,
		Position:   in.Position,
		TotalHours: in.TotalHours,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		WorkDays:   make(map[string]bool),
		DailyLogs:  make(map[string]DailyLog, len(logs)),
	}
	for _, log := range logs {
		s.DailyLogs[log.LogDate] = DailyLog{Hours: log.Hours, Notes: log.Notes}
		if log.Hours > 0 {
			s.WorkDays[log.LogDate] = true
		}
		s.CompletedHours += log.Hours
	}
	return s
}

// SanitizeHours coerces user input to a usable hours value: NaN, infinite
// and negative values collapse to 0.
func SanitizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

// SaveLog applies the incremental reconciliation rule for one date and
// returns the updated snapshot. Saving zero hours removes the entry
// entirely, it does not retain a zero row.
func (s Snapshot) SaveLog(dateKey string, hours float64, notes string) Snapshot {
	hours = SanitizeHours(hours)
	previous := s.DailyLogs[dateKey].Hours

	next := s.clone()
	if hours > 0 {
		next.DailyLogs[dateKey] = DailyLog{Hours: hours, Notes: notes}
		next.WorkDays[dateKey] = true
	} else {
		delete(next.DailyLogs, dateKey)
		delete(next.WorkDays, dateKey)
	}
	// Clamp guards against float drift; the total must never go negative.
	next.CompletedHours = math.Max(0, s.CompletedHours-previous+hours)
	return next
}

// DeleteLog removes the log for one date. Equivalent to SaveLog with zero
// hours.
func (s Snapshot) DeleteLog(dateKey string) Snapshot {
	return s.SaveLog(dateKey, 0, "")
}

// Recompute re-derives CompletedHours as the exact sum over DailyLogs,
// discarding any incrementally tracked value.
func (s Snapshot) Recompute() Snapshot {
	next := s.clone()
	next.CompletedHours = 0
	for _, log := range next.DailyLogs {
		next.CompletedHours += log.Hours
	}
	return next
}

// ProgressPercent reports completion toward the hours target, clamped to
// 100 even when the target is exceeded.
func (s Snapshot) ProgressPercent() float64 {
	if s.TotalHours <= 0 {
		return 0
	}
	return math.Min(100, s.CompletedHours/s.TotalHours*100)
}

// RemainingHours reports hours left toward the target, never negative.
func (s Snapshot) RemainingHours() float64 {
	return math.Max(0, s.TotalHours-s.CompletedHours)
}

// WorkDayCount reports the number of days with logged hours.
func (s Snapshot) WorkDayCount() int {
	return len(s.WorkDays)
}

// LogEntry is one dated log in a flattened, sortable form.
type LogEntry struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Notes string  `json:"notes"`
}

// RangeSummary is the result of filtering logs to a date window.
type RangeSummary struct {
	Entries    []LogEntry `json:"entries"`
	TotalDays  int        `json:"total_days"`
	TotalHours float64    `json:"total_hours"`
}

// FilterRange returns the logs whose date falls inside the optional
// [start, end] window (inclusive, either bound may be empty), sorted by
// date, together with day and hour totals. A window with start after end
// is rejected, not swapped.
func (s Snapshot) FilterRange(start, end string) (RangeSummary, error) {
	if start != "" {
		if err := ValidateDateKey(start); err != nil {
			return RangeSummary{}, err
		}
	}
	if end != "" {
		if err := ValidateDateKey(end); err != nil {
			return RangeSummary{}, err
		}
	}
	if start != "" && end != "" && start > end {
		return RangeSummary{}, fmt.Errorf("start date %s is after end date %s", start, end)
	}

	var summary RangeSummary
	for date, log := range s.DailyLogs {
		if start != "" && date < start {
			continue
		}
		if end != "" && date > end {
			continue
		}
		summary.Entries = append(summary.Entries, LogEntry{Date: date, Hours: log.Hours, Notes: log.Notes})
		summary.TotalHours += log.Hours
	}
	sort.Slice(summary.Entries, func(i, j int) bool {
		return summary.Entries[i].Date < summary.Entries[j].Date
	})
	summary.TotalDays = len(summary.Entries)
	return summary, nil
}

func (s Snapshot) clone() Snapshot {
	next := s
	next.WorkDays = make(map[string]bool, len(s.WorkDays))
	for d := range s.WorkDays {
		next.WorkDays[d] = true
	}
	next.DailyLogs = make(map[string]DailyLog, len(s.DailyLogs))
	for d, log := range s.DailyLogs {
		next.DailyLogs[d] = log
	}
	return next
}
