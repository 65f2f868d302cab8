package models

import "time"

// Worker represents a member of the field staff roster
type Worker struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	State     string `json:"state,omitempty"`
	IsActive  bool   `json:"is_active"`
}

// ScheduleEntry represents a worker's recurring weekly working hours for one weekday.
// DayOfWeek uses the Sunday=0 convention. Times are wall-clock "HH:MM:SS" strings.
type ScheduleEntry struct {
	WorkerID  string `json:"worker_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

// TimeOff represents a closed calendar-day interval during which a worker is unavailable.
// Dates are "YYYY-MM-DD" strings; both bounds are inclusive.
type TimeOff struct {
	WorkerID  string `json:"worker_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

// SeasonalOverride pins a worker's availability for one specific date to a set of
// day-part tokens (morning, afternoon, evening, anytime) instead of the weekly schedule.
type SeasonalOverride struct {
	WorkerID string   `json:"worker_id"`
	Date     string   `json:"date"`
	Parts    []string `json:"parts"`
}

// Booking represents booked work. A booking can name zero or more workers.
type Booking struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	WorkerIDs []string  `json:"worker_ids"`
}

// BoardInput bundles the five raw collections the availability engine consumes
type BoardInput struct {
	Workers           []Worker           `json:"workers"`
	ScheduleEntries   []ScheduleEntry    `json:"schedule_entries"`
	TimeOff           []TimeOff          `json:"time_off"`
	SeasonalOverrides []SeasonalOverride `json:"seasonal_overrides"`
	Bookings          []Booking          `json:"bookings"`
}

// BoardRequest is the payload of the board computation endpoints
type BoardRequest struct {
	BoardInput
	Days       int    `json:"days"`
	AnchorDate string `json:"anchor_date"`
}

// DayAvailability is the resolved verdict for one worker on one day
type DayAvailability struct {
	Date                 string   `json:"date"`
	IsAvailable          bool     `json:"is_available"`
	StartTime            string   `json:"start_time,omitempty"`
	EndTime              string   `json:"end_time,omitempty"`
	IsUnavailable        bool     `json:"is_unavailable"`
	UnavailabilityReason string   `json:"unavailability_reason,omitempty"`
	AvailableHours       float64  `json:"available_hours"`
	AssignedHours        float64  `json:"assigned_hours"`
	SeasonalParts        []string `json:"seasonal_parts,omitempty"`
	IsSeasonalOverride   bool     `json:"is_seasonal_override"`
}
