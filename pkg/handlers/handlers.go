package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lukasweir/availability-board-go/internal/roster"
	"github.com/lukasweir/availability-board-go/pkg/auth"
	"github.com/lukasweir/availability-board-go/pkg/availability"
	"github.com/lukasweir/availability-board-go/pkg/database"
	"github.com/lukasweir/availability-board-go/pkg/models"
)

const (
	defaultWindowDays  = 30
	planningWindowDays = 60
	maxWindowDays      = 90
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB *gorm.DB
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// APIKeyMiddleware verifies the API key for board routes using HMAC
func (h *Handler) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("Authorization")
		if key == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "API Key required"})
			c.Abort()
			return
		}

		if len(key) > 7 && key[:7] == "Bearer " {
			key = key[7:]
		}

		userID, err := auth.VerifyHMACKey(key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key signature"})
			c.Abort()
			return
		}

		// Fetch or create the API key record to track usage
		var apiKey database.APIKey
		h.DB.Where(database.APIKey{Key: key}).FirstOrCreate(&apiKey, database.APIKey{
			Key:       key,
			Name:      userID,
			RateLimit: 10000,
		})
		auth.TouchAPIKey(h.DB, &apiKey)

		c.Set("apiKey", &apiKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// windowDays resolves the day count for a request: the explicit value first,
// then the BOARD_WINDOW_DAYS environment override, then the default. The
// result is capped at maxWindowDays.
func windowDays(requested int) int {
	if requested <= 0 {
		if env := os.Getenv("BOARD_WINDOW_DAYS"); env != "" {
			if n, err := strconv.Atoi(env); err == nil && n > 0 {
				requested = n
			}
		}
	}
	if requested <= 0 {
		requested = defaultWindowDays
	}
	if requested > maxWindowDays {
		requested = maxWindowDays
	}
	return requested
}

// anchorFrom parses an optional "YYYY-MM-DD" anchor date, defaulting to now
func anchorFrom(s string) time.Time {
	if s != "" {
		if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func respondBoard(c *gin.Context, board *availability.Board) {
	c.JSON(http.StatusOK, gin.H{
		"days": board.Days,
		"grouped_workers": gin.H{
			"by_state":            board.ByState,
			"unavailable_workers": board.UnavailableWorkers,
		},
	})
}

// BoardJSON computes an availability board from a JSON payload
func (h *Handler) BoardJSON(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board := availability.Assemble(req.BoardInput, anchorFrom(req.AnchorDate), windowDays(req.Days))

	h.RecordUsage(c, len(req.Workers), len(req.Bookings))

	respondBoard(c, board)
}

// BoardCSV computes an availability board and returns it as a flat CSV export
// for spreadsheet consumers
func (h *Handler) BoardCSV(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board := availability.Assemble(req.BoardInput, anchorFrom(req.AnchorDate), windowDays(req.Days))

	h.RecordUsage(c, len(req.Workers), len(req.Bookings))

	var outCSV strings.Builder
	writer := csv.NewWriter(&outCSV)
	writer.Write([]string{"state", "worker_id", "worker_name", "date", "status", "start_time", "end_time", "available_hours", "assigned_hours"})

	for state, workers := range board.ByState {
		for _, wa := range workers {
			name := wa.Worker.FirstName + " " + wa.Worker.LastName
			for _, day := range wa.Days {
				status := "none"
				switch {
				case day.IsUnavailable:
					status = "unavailable"
				case day.IsSeasonalOverride:
					status = "seasonal"
				case day.IsAvailable:
					status = "available"
				}
				writer.Write([]string{
					state,
					wa.Worker.ID,
					name,
					day.Date,
					status,
					day.StartTime,
					day.EndTime,
					fmt.Sprintf("%.2f", day.AvailableHours),
					fmt.Sprintf("%.2f", day.AssignedHours),
				})
			}
		}
	}
	writer.Flush()

	c.JSON(http.StatusOK, gin.H{"csv": outCSV.String()})
}

// GetBoard serves the dashboard feed: it loads the roster from the database
// and computes the board for the requested window (BOARD_WINDOW_DAYS or 30)
func (h *Handler) GetBoard(c *gin.Context) {
	days := 0
	if q := c.Query("days"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			days = n
		}
	}
	h.serveRosterBoard(c, windowDays(days))
}

// GetPlanningBoard is the long-range call site: same loader and engine as
// GetBoard with a fixed 60-day window
func (h *Handler) GetPlanningBoard(c *gin.Context) {
	h.serveRosterBoard(c, planningWindowDays)
}

func (h *Handler) serveRosterBoard(c *gin.Context, days int) {
	in, err := roster.Load(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load roster"})
		return
	}

	board := availability.Assemble(in, anchorFrom(c.Query("anchor_date")), days)

	h.RecordUsage(c, len(in.Workers), len(in.Bookings))

	respondBoard(c, board)
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// GenerateKey creates a new API key using the HMAC strategy
func (h *Handler) GenerateKey(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		RateLimit int    `json:"rate_limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	if req.RateLimit == 0 {
		req.RateLimit = 10000
	}

	key := auth.GenerateHMACKey(req.Name)

	// Preview shown in key listings instead of the full key
	preview := "****"
	if len(key) > 8 {
		preview = key[:3] + "..." + key[len(key)-4:]
	}

	apiKey := database.APIKey{
		Key:        key,
		Name:       req.Name,
		KeyPreview: preview,
		RateLimit:  req.RateLimit,
	}

	if err := h.DB.Create(&apiKey).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create key record"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name": req.Name,
		"key":  key,
	})
}

// ListKeys returns all API keys
func (h *Handler) ListKeys(c *gin.Context) {
	var keys []database.APIKey
	h.DB.Find(&keys)
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// RevokeKey deletes an API key
func (h *Handler) RevokeKey(c *gin.Context) {
	id := c.Param("id")
	if err := h.DB.Delete(&database.APIKey{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Key revoked"})
}

// UpdateKeyLimit updates the rate limit for a key
func (h *Handler) UpdateKeyLimit(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		RateLimit int `json:"rate_limit" form:"rate_limit"`
	}

	// Try JSON first, then Form/Query
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rate_limit is required"})
			return
		}
	}

	if req.RateLimit == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate limit"})
		return
	}

	if err := h.DB.Model(&database.APIKey{}).Where("id = ?", id).Update("rate_limit", req.RateLimit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update key limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rate limit updated successfully"})
}

// GetUsage returns usage stats for a key
func (h *Handler) GetUsage(c *gin.Context) {
	id := c.Param("id")
	var usage []database.APIUsage
	h.DB.Where("key_id = ?", id).Order("date desc").Limit(30).Find(&usage)
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
