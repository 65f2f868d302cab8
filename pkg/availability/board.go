package availability

import (
	"strings"
	"time"

	"github.com/lukasweir/availability-board-go/pkg/models"
)

// UnknownState is the grouping bucket for workers with no state label
const UnknownState = "Unknown"

// WorkerAvailability pairs a worker with their resolved window
type WorkerAvailability struct {
	Worker models.Worker            `json:"worker"`
	Days   []models.DayAvailability `json:"days"`
}

// UnavailableWorker pairs a long-term-absent worker with the range that
// triggered the reclassification
type UnavailableWorker struct {
	Worker  models.Worker  `json:"worker"`
	TimeOff models.TimeOff `json:"unavailability"`
}

// Board is the fully resolved, grouped availability board for one window
type Board struct {
	Days               []DayDescriptor                 `json:"days"`
	ByState            map[string][]WorkerAvailability `json:"by_state"`
	UnavailableWorkers []UnavailableWorker             `json:"unavailable_workers"`
}

// Assemble computes the availability board for the window of n days starting
// at the anchor date. It is a pure function of its inputs: the caller supplies
// the anchor, so identical inputs always produce an identical board.
//
// Inactive workers are skipped outright. Workers with any time-off range
// longer than 7 days are reported separately and excluded from per-day
// resolution. Workers whose resolved window contains no available or
// seasonal-override day anywhere are dropped entirely. Survivors are grouped
// by state, with missing labels collected under "Unknown"; insertion order
// within a bucket follows roster order.
func Assemble(in models.BoardInput, anchor time.Time, n int) *Board {
	days := Window(anchor, n)
	booked := NewBookingIndex(in.Bookings)

	entriesByWorker := make(map[string][]models.ScheduleEntry)
	for _, e := range in.ScheduleEntries {
		entriesByWorker[e.WorkerID] = append(entriesByWorker[e.WorkerID], e)
	}
	timeOffByWorker := make(map[string][]models.TimeOff)
	for _, r := range in.TimeOff {
		timeOffByWorker[r.WorkerID] = append(timeOffByWorker[r.WorkerID], r)
	}
	overridesByWorker := make(map[string][]models.SeasonalOverride)
	for _, ov := range in.SeasonalOverrides {
		overridesByWorker[ov.WorkerID] = append(overridesByWorker[ov.WorkerID], ov)
	}

	board := &Board{
		Days:               days,
		ByState:            make(map[string][]WorkerAvailability),
		UnavailableWorkers: []UnavailableWorker{},
	}

	for _, w := range in.Workers {
		if !w.IsActive {
			continue
		}

		idx := newWorkerIndex(w.ID, entriesByWorker[w.ID], timeOffByWorker[w.ID], overridesByWorker[w.ID])

		if off, ok := idx.longTimeOff(); ok {
			board.UnavailableWorkers = append(board.UnavailableWorkers, UnavailableWorker{Worker: w, TimeOff: off})
			continue
		}

		resolved := make([]models.DayAvailability, 0, len(days))
		hasAny := false
		for _, day := range days {
			da := idx.resolveDay(day, booked)
			if da.IsAvailable || da.IsSeasonalOverride {
				hasAny = true
			}
			resolved = append(resolved, da)
		}

		// Window-wide existence check, not a per-day filter
		if !hasAny {
			continue
		}

		state := strings.TrimSpace(w.State)
		if state == "" {
			state = UnknownState
		}
		board.ByState[state] = append(board.ByState[state], WorkerAvailability{Worker: w, Days: resolved})
	}

	return board
}
