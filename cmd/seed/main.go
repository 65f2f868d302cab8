package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lukasweir/availability-board-go/pkg/database"
)

// Seeds a small sample roster so the GET board endpoints have something to
// show during development. Running it twice doubles the roster; use a fresh
// DATA_PATH when that matters.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()

	today := time.Now()
	nextMonday := today.AddDate(0, 0, (8-int(today.Weekday()))%7)

	workers := []database.Worker{
		{ID: uuid.NewString(), FirstName: "Maria", LastName: "Santos", State: "QLD", IsActive: true},
		{ID: uuid.NewString(), FirstName: "James", LastName: "Chen", State: "NSW", IsActive: true},
		{ID: uuid.NewString(), FirstName: "Priya", LastName: "Nair", State: "", IsActive: true},
		{ID: uuid.NewString(), FirstName: "Tom", LastName: "Okafor", State: "QLD", IsActive: true},
	}
	if err := db.Create(&workers).Error; err != nil {
		log.Fatalf("could not seed workers: %v", err)
	}

	var entries []database.ScheduleEntry
	for _, w := range workers[:3] {
		// Weekdays only, 09:00-17:00
		for dow := 1; dow <= 5; dow++ {
			entries = append(entries, database.ScheduleEntry{
				WorkerID:  w.ID,
				DayOfWeek: dow,
				StartTime: "09:00:00",
				EndTime:   "17:00:00",
				IsActive:  true,
			})
		}
	}
	if err := db.Create(&entries).Error; err != nil {
		log.Fatalf("could not seed schedule entries: %v", err)
	}

	timeOff := []database.TimeOff{
		{
			WorkerID:  workers[1].ID,
			StartDate: today.AddDate(0, 0, 3).Format("2006-01-02"),
			EndDate:   today.AddDate(0, 0, 5).Format("2006-01-02"),
			Reason:    "Annual leave",
		},
		{
			// Long leave: excluded from the per-day board entirely
			WorkerID:  workers[3].ID,
			StartDate: today.Format("2006-01-02"),
			EndDate:   today.AddDate(0, 0, 21).Format("2006-01-02"),
			Reason:    "Parental leave",
		},
	}
	if err := db.Create(&timeOff).Error; err != nil {
		log.Fatalf("could not seed time off: %v", err)
	}

	overrides := []database.SeasonalOverride{
		{WorkerID: workers[0].ID, Date: nextMonday.Format("2006-01-02"), Parts: "morning|evening"},
		{WorkerID: workers[2].ID, Date: nextMonday.Format("2006-01-02"), Parts: "anytime"},
	}
	if err := db.Create(&overrides).Error; err != nil {
		log.Fatalf("could not seed seasonal overrides: %v", err)
	}

	bookingStart := time.Date(nextMonday.Year(), nextMonday.Month(), nextMonday.Day(), 10, 0, 0, 0, time.Local)
	bookings := []database.Booking{
		{StartTime: bookingStart, EndTime: bookingStart.Add(2 * time.Hour), WorkerIDs: workers[0].ID},
		{StartTime: bookingStart.Add(4 * time.Hour), EndTime: bookingStart.Add(7 * time.Hour), WorkerIDs: workers[0].ID + "|" + workers[1].ID},
	}
	if err := db.Create(&bookings).Error; err != nil {
		log.Fatalf("could not seed bookings: %v", err)
	}

	fmt.Printf("Seeded %d workers, %d schedule entries, %d time-off ranges, %d overrides, %d bookings\n",
		len(workers), len(entries), len(timeOff), len(overrides), len(bookings))
}
