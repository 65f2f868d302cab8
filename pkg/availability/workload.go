package availability

import "github.com/lukasweir/availability-board-go/pkg/models"

// BookingIndex holds booked hours per worker per calendar day. A booking is
// attributed in full to the calendar date of its start time, even when it runs
// past midnight. Bookings naming worker IDs outside the roster simply never
// get looked up.
type BookingIndex map[string]map[string]float64

// NewBookingIndex builds the assigned-hours lookup from the raw bookings
func NewBookingIndex(bookings []models.Booking) BookingIndex {
	idx := make(BookingIndex)
	for _, b := range bookings {
		day := b.StartTime.Format(dateKeyLayout)
		hours := b.EndTime.Sub(b.StartTime).Hours()
		for _, workerID := range b.WorkerIDs {
			byDay := idx[workerID]
			if byDay == nil {
				byDay = make(map[string]float64)
				idx[workerID] = byDay
			}
			byDay[day] += hours
		}
	}
	return idx
}

// AssignedHours returns the total booked hours for a worker on one day
func (bi BookingIndex) AssignedHours(workerID, dateKey string) float64 {
	return bi[workerID][dateKey]
}
