package availability

import "fmt"

// PartOfDay is a coarse day-part token used by seasonal overrides
type PartOfDay string

const (
	PartMorning   PartOfDay = "morning"
	PartAfternoon PartOfDay = "afternoon"
	PartEvening   PartOfDay = "evening"
	PartAnytime   PartOfDay = "anytime"
)

// periodHours maps a day-part token to its clock-hour range and duration.
// "anytime" spans the whole working day and subsumes the other tokens.
type periodHours struct {
	startHour int
	endHour   int
	hours     float64
}

var periodTable = map[PartOfDay]periodHours{
	PartMorning:   {startHour: 6, endHour: 12, hours: 6},
	PartAfternoon: {startHour: 12, endHour: 18, hours: 6},
	PartEvening:   {startHour: 18, endHour: 22, hours: 4},
	PartAnytime:   {startHour: 6, endHour: 22, hours: 16},
}

func clockString(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour)
}
