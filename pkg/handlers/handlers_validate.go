package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lukasweir/availability-board-go/pkg/availability"
	"github.com/lukasweir/availability-board-go/pkg/models"
)

// ValidateInput checks a board payload for the data-quality problems the
// engine absorbs silently (last-wins duplicates, inverted ranges), so callers
// can catch them at the boundary instead.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.BoardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Workers) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one worker is required",
		})
		return
	}

	// Check for duplicate worker IDs
	workerIDs := make(map[string]bool)
	for _, w := range input.Workers {
		if workerIDs[w.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate worker ID: " + w.ID})
			return
		}
		workerIDs[w.ID] = true
	}

	// Duplicate active entries for the same (worker, weekday) would resolve
	// last-one-wins inside the engine
	entrySeen := make(map[string]bool)
	for _, e := range input.ScheduleEntries {
		if !e.IsActive {
			continue
		}
		key := fmt.Sprintf("%s/%d", e.WorkerID, e.DayOfWeek)
		if entrySeen[key] {
			c.JSON(http.StatusOK, gin.H{
				"valid": false,
				"error": fmt.Sprintf("Duplicate active schedule entry for worker %s on weekday %d", e.WorkerID, e.DayOfWeek),
			})
			return
		}
		entrySeen[key] = true
	}

	// Same rule for (worker, date) overrides
	overrideSeen := make(map[string]bool)
	for _, ov := range input.SeasonalOverrides {
		key := ov.WorkerID + "/" + ov.Date
		if overrideSeen[key] {
			c.JSON(http.StatusOK, gin.H{
				"valid": false,
				"error": fmt.Sprintf("Duplicate seasonal override for worker %s on %s", ov.WorkerID, ov.Date),
			})
			return
		}
		overrideSeen[key] = true
	}

	// Non-fatal findings: the engine passes these through unvalidated
	var warnings []string
	for _, e := range input.ScheduleEntries {
		if availability.HoursFromRange(e.StartTime, e.EndTime) < 0 {
			warnings = append(warnings, fmt.Sprintf("Schedule entry for worker %s on weekday %d ends before it starts", e.WorkerID, e.DayOfWeek))
		}
	}
	for _, r := range input.TimeOff {
		if r.EndDate < r.StartDate {
			warnings = append(warnings, fmt.Sprintf("Time off for worker %s ends before it starts", r.WorkerID))
		}
	}
	for _, b := range input.Bookings {
		for _, id := range b.WorkerIDs {
			if !workerIDs[id] {
				warnings = append(warnings, "Booking references unknown worker ID: "+id)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"warnings": warnings,
		"stats": gin.H{
			"worker_count":   len(input.Workers),
			"entry_count":    len(input.ScheduleEntries),
			"time_off_count": len(input.TimeOff),
			"override_count": len(input.SeasonalOverrides),
			"booking_count":  len(input.Bookings),
		},
	})
}
