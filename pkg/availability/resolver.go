package availability

import (
	"time"

	"github.com/lukasweir/availability-board-go/pkg/models"
)

// longLeaveThreshold is the strict cutoff above which a single time-off range
// reclassifies its worker as fully unavailable for the whole window.
const longLeaveThreshold = 7 * 24 * time.Hour

// workerIndex holds one worker's lookup structures for a computation pass.
// Duplicate active schedule entries for the same weekday and duplicate
// overrides for the same date resolve last-one-wins; upstream data is expected
// to keep them unique.
type workerIndex struct {
	workerID  string
	schedule  map[int]models.ScheduleEntry
	overrides map[string]models.SeasonalOverride
	timeOff   []models.TimeOff
}

func newWorkerIndex(workerID string, entries []models.ScheduleEntry, timeOff []models.TimeOff, overrides []models.SeasonalOverride) *workerIndex {
	idx := &workerIndex{
		workerID:  workerID,
		schedule:  make(map[int]models.ScheduleEntry, len(entries)),
		overrides: make(map[string]models.SeasonalOverride, len(overrides)),
		timeOff:   timeOff,
	}
	for _, e := range entries {
		if e.IsActive {
			idx.schedule[e.DayOfWeek] = e
		}
	}
	for _, ov := range overrides {
		idx.overrides[ov.Date] = ov
	}
	return idx
}

// longTimeOff reports the first time-off range spanning more than 7 days.
// The comparison is strict: a range whose end is exactly 7 days after its
// start does not qualify.
func (wi *workerIndex) longTimeOff() (models.TimeOff, bool) {
	for _, r := range wi.timeOff {
		start, err1 := time.Parse(dateKeyLayout, r.StartDate)
		end, err2 := time.Parse(dateKeyLayout, r.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		if end.Sub(start) > longLeaveThreshold {
			return r, true
		}
	}
	return models.TimeOff{}, false
}

// resolveDay produces the availability verdict for one day by consulting the
// sources in priority order: time off first, then a seasonal override, then
// the recurring weekly schedule. The first match decides the day.
func (wi *workerIndex) resolveDay(day DayDescriptor, booked BookingIndex) models.DayAvailability {
	key := day.DateKey()
	out := models.DayAvailability{Date: key}

	// Inclusive calendar-day containment; "YYYY-MM-DD" compares lexicographically.
	// Assigned hours are deliberately left at zero for time-off days.
	for _, r := range wi.timeOff {
		if key >= r.StartDate && key <= r.EndDate {
			out.IsUnavailable = true
			out.UnavailabilityReason = r.Reason
			return out
		}
	}

	if ov, ok := wi.overrides[key]; ok && len(ov.Parts) > 0 {
		out.IsAvailable = true
		out.IsSeasonalOverride = true
		out.SeasonalParts = ov.Parts
		out.AvailableHours = HoursFromParts(ov.Parts)

		// Display times come from a single representative token: "anytime"
		// when present, otherwise the first token of the set.
		rep := PartOfDay(ov.Parts[0])
		for _, p := range ov.Parts {
			if PartOfDay(p) == PartAnytime {
				rep = PartAnytime
				break
			}
		}
		if ph, ok := periodTable[rep]; ok {
			out.StartTime = clockString(ph.startHour)
			out.EndTime = clockString(ph.endHour)
		}

		out.AssignedHours = booked.AssignedHours(wi.workerID, key)
		return out
	}

	if e, ok := wi.schedule[day.Weekday]; ok {
		out.IsAvailable = true
		out.StartTime = e.StartTime
		out.EndTime = e.EndTime
		out.AvailableHours = HoursFromRange(e.StartTime, e.EndTime)
		out.AssignedHours = booked.AssignedHours(wi.workerID, key)
		return out
	}

	return out
}
