package roster

import (
	"strings"

	"gorm.io/gorm"

	"github.com/lukasweir/availability-board-go/pkg/database"
	"github.com/lukasweir/availability-board-go/pkg/models"
)

// Load fetches the five raw collections from the database and assembles the
// engine input. It is purely the read side: the engine never writes back.
func Load(db *gorm.DB) (models.BoardInput, error) {
	var in models.BoardInput

	var workers []database.Worker
	if err := db.Order("last_name ASC, first_name ASC").Find(&workers).Error; err != nil {
		return in, err
	}
	in.Workers = make([]models.Worker, 0, len(workers))
	for _, w := range workers {
		in.Workers = append(in.Workers, models.Worker{
			ID:        w.ID,
			FirstName: w.FirstName,
			LastName:  w.LastName,
			State:     w.State,
			IsActive:  w.IsActive,
		})
	}

	var entries []database.ScheduleEntry
	if err := db.Find(&entries).Error; err != nil {
		return in, err
	}
	in.ScheduleEntries = make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		in.ScheduleEntries = append(in.ScheduleEntries, models.ScheduleEntry{
			WorkerID:  e.WorkerID,
			DayOfWeek: e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
			IsActive:  e.IsActive,
		})
	}

	var timeOff []database.TimeOff
	if err := db.Find(&timeOff).Error; err != nil {
		return in, err
	}
	in.TimeOff = make([]models.TimeOff, 0, len(timeOff))
	for _, r := range timeOff {
		in.TimeOff = append(in.TimeOff, models.TimeOff{
			WorkerID:  r.WorkerID,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Reason:    r.Reason,
		})
	}

	var overrides []database.SeasonalOverride
	if err := db.Find(&overrides).Error; err != nil {
		return in, err
	}
	in.SeasonalOverrides = make([]models.SeasonalOverride, 0, len(overrides))
	for _, ov := range overrides {
		in.SeasonalOverrides = append(in.SeasonalOverrides, models.SeasonalOverride{
			WorkerID: ov.WorkerID,
			Date:     ov.Date,
			Parts:    splitSet(ov.Parts),
		})
	}

	var bookings []database.Booking
	if err := db.Find(&bookings).Error; err != nil {
		return in, err
	}
	in.Bookings = make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		in.Bookings = append(in.Bookings, models.Booking{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			WorkerIDs: splitSet(b.WorkerIDs),
		})
	}

	return in, nil
}

// splitSet parses a pipe-separated set column into its elements
func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, "|") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
