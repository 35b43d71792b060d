package deadline

import "time"

// Business-day offsets applied when deriving the dependent dates of a
// campaign from its anchors.
const (
	FeedbackOffset         = 3
	ReportReceiptOffset    = 10
	InternalAnalysisOffset = 3
)

// Anchors holds the two user-entered dates from which every other deadline
// of a campaign is derived. A nil anchor means the date was not provided.
type Anchors struct {
	AgencyReturn  *time.Time
	ExhibitionEnd *time.Time
}

// Derived holds the dates computed from Anchors. A field is nil when the
// anchor it depends on is absent.
type Derived struct {
	FeedbackToAgency         *time.Time
	ExpectedReportReceipt    *time.Time
	InternalAnalysisDeadline *time.Time
}

// Normalize strips the time of day from t. The calendar day is read in t's
// own location and returned at midnight UTC, so that later day arithmetic is
// not affected by daylight-saving transitions.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay reports whether t falls on Monday through Friday. There is no
// holiday calendar.
func IsBusinessDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// AddBusinessDays advances date one calendar day at a time until n business
// days have been counted. The start day is never counted and weekends are
// traversed without being counted. For n <= 0 the normalized date is returned
// unchanged.
func AddBusinessDays(date time.Time, n int) time.Time {
	cur := Normalize(date)
	for added := 0; added < n; {
		cur = cur.AddDate(0, 0, 1)
		if IsBusinessDay(cur) {
			added++
		}
	}
	return cur
}

// Derive computes the dependent dates of a campaign:
//
//	feedback to agency       = agency return + 3 business days
//	expected report receipt  = exhibition end + 10 business days
//	internal analysis        = expected report receipt + 3 business days
//
// Missing anchors yield missing derived dates; Derive never fails.
func Derive(a Anchors) Derived {
	var d Derived
	if a.AgencyReturn != nil && !a.AgencyReturn.IsZero() {
		d.FeedbackToAgency = ptr(AddBusinessDays(*a.AgencyReturn, FeedbackOffset))
	}
	if a.ExhibitionEnd != nil && !a.ExhibitionEnd.IsZero() {
		d.ExpectedReportReceipt = ptr(AddBusinessDays(*a.ExhibitionEnd, ReportReceiptOffset))
	}
	if d.ExpectedReportReceipt != nil {
		d.InternalAnalysisDeadline = ptr(AddBusinessDays(*d.ExpectedReportReceipt, InternalAnalysisOffset))
	}
	return d
}

// BusinessDaysUntil counts the business days from today through end, both
// inclusive. It returns 0 when end is before today.
func BusinessDaysUntil(today, end time.Time) int {
	cur, last := Normalize(today), Normalize(end)
	count := 0
	for !cur.After(last) {
		if IsBusinessDay(cur) {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// DaysBetween returns the number of calendar days from a to b. The result is
// negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Normalize(b).Sub(Normalize(a)).Hours() / 24)
}

func ptr(t time.Time) *time.Time { return &t }
