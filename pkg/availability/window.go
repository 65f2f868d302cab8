package availability

import "time"

const dateKeyLayout = "2006-01-02"

// DayDescriptor describes one calendar day of the evaluation window
type DayDescriptor struct {
	Date      time.Time `json:"date"`
	Weekday   int       `json:"weekday"`
	IsToday   bool      `json:"is_today"`
	IsWeekend bool      `json:"is_weekend"`
}

// DateKey returns the day's date as a "YYYY-MM-DD" string
func (d DayDescriptor) DateKey() string {
	return d.Date.Format(dateKeyLayout)
}

// Window returns n consecutive calendar days starting at the anchor's local
// midnight. Weekdays use the Sunday=0 convention; Saturday and Sunday are
// flagged as weekend days.
func Window(anchor time.Time, n int) []DayDescriptor {
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	days := make([]DayDescriptor, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		wd := int(d.Weekday())
		days = append(days, DayDescriptor{
			Date:      d,
			Weekday:   wd,
			IsToday:   i == 0,
			IsWeekend: wd == 0 || wd == 6,
		})
	}
	return days
}
