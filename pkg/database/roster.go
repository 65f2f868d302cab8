package database

import "time"

// Roster tables backing the GET board endpoints. Dates are stored as
// YYYY-MM-DD strings; day-part and worker-ID sets are pipe-separated.

// Worker represents the workers table
type Worker struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	State     string    `json:"state"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleEntry represents the schedule_entries table
type ScheduleEntry struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	WorkerID  string `gorm:"size:50;not null;index:idx_schedule_worker" json:"worker_id"`
	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:10;not null" json:"start_time"`
	EndTime   string `gorm:"size:10;not null" json:"end_time"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

// TimeOff represents the time_off table
type TimeOff struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	WorkerID  string `gorm:"size:50;not null;index:idx_timeoff_worker" json:"worker_id"`
	StartDate string `gorm:"size:10;not null" json:"start_date"`
	EndDate   string `gorm:"size:10;not null" json:"end_date"`
	Reason    string `json:"reason"`
}

// SeasonalOverride represents the seasonal_overrides table
type SeasonalOverride struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	WorkerID string `gorm:"size:50;not null;index:idx_override_worker" json:"worker_id"`
	Date     string `gorm:"size:10;not null" json:"date"`
	Parts    string `gorm:"not null" json:"parts"` // e.g. "morning|evening"
}

// Booking represents the bookings table
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null;index:idx_booking_start" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	WorkerIDs string    `json:"worker_ids"` // pipe-separated worker IDs
}
