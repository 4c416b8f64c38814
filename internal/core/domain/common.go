package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy / LastUpdatedBy carry the operator username from the auth token.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// CalendarDateLayout is the layout of Session.CalendarDate.
const CalendarDateLayout = "2006-01-02"

// CalendarDate returns the till calendar date of t in loc.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(CalendarDateLayout)
}
