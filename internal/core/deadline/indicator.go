package deadline

import "time"

// Level classifies how close a deadline is.
type Level string

const (
	LevelOverdue Level = "Vencido"
	LevelSoon    Level = "Próximo"
	LevelOnTrack Level = "No prazo"
)

// SoonThreshold is the number of calendar days at or below which a deadline
// is reported as LevelSoon.
const SoonThreshold = 7

// Indicator summarises a single deadline relative to a reference day.
type Indicator struct {
	Due              time.Time `json:"due"`
	Level            Level     `json:"level"`
	DaysLeft         int       `json:"days_left"`
	BusinessDaysLeft int       `json:"business_days_left"`
}

// Evaluate builds the Indicator of due as seen on today. A nil or zero due
// date has no indicator and Evaluate returns nil.
func Evaluate(due *time.Time, today time.Time) *Indicator {
	if due == nil || due.IsZero() {
		return nil
	}
	ind := &Indicator{
		Due:              Normalize(*due),
		DaysLeft:         DaysBetween(today, *due),
		BusinessDaysLeft: BusinessDaysUntil(today, *due),
	}
	switch {
	case ind.DaysLeft <= 0:
		ind.Level = LevelOverdue
	case ind.DaysLeft <= SoonThreshold:
		ind.Level = LevelSoon
	default:
		ind.Level = LevelOnTrack
	}
	return ind
}
