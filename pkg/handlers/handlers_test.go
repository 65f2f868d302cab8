package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The compute endpoints never touch the DB when no API key is in the request
// context, so a zero-value Handler is enough here.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/board", h.BoardJSON)
	r.POST("/board/csv", h.BoardCSV)
	r.POST("/validate", h.ValidateInput)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBoardPayload() map[string]any {
	return map[string]any{
		"anchor_date": "2026-09-01", // a Tuesday
		"days":        30,
		"workers": []map[string]any{
			{"id": "w1", "first_name": "Maria", "last_name": "Santos", "state": "QLD", "is_active": true},
		},
		"schedule_entries": []map[string]any{
			{"worker_id": "w1", "day_of_week": 2, "start_time": "09:00:00", "end_time": "17:00:00", "is_active": true},
		},
	}
}

func TestBoardJSON(t *testing.T) {
	w := postJSON(t, testRouter(), "/board", sampleBoardPayload())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Days           []map[string]any `json:"days"`
		GroupedWorkers struct {
			ByState map[string][]struct {
				Worker map[string]any   `json:"worker"`
				Days   []map[string]any `json:"days"`
			} `json:"by_state"`
			UnavailableWorkers []map[string]any `json:"unavailable_workers"`
		} `json:"grouped_workers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Days, 30)
	require.Len(t, resp.GroupedWorkers.ByState["QLD"], 1)
	assert.Empty(t, resp.GroupedWorkers.UnavailableWorkers)

	days := resp.GroupedWorkers.ByState["QLD"][0].Days
	require.Len(t, days, 30)

	// The anchor day is the scheduled Tuesday
	first := days[0]
	assert.Equal(t, "2026-09-01", first["date"])
	assert.Equal(t, true, first["is_available"])
	assert.Equal(t, "09:00:00", first["start_time"])
	assert.Equal(t, 8.0, first["available_hours"])
}

func TestBoardJSON_BadPayload(t *testing.T) {
	r := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/board", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoardCSV(t *testing.T) {
	w := postJSON(t, testRouter(), "/board/csv", sampleBoardPayload())

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CSV string `json:"csv"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Contains(t, resp.CSV, "state,worker_id,worker_name,date,status")
	assert.Contains(t, resp.CSV, "QLD,w1,Maria Santos,2026-09-01,available,09:00:00,17:00:00,8.00,0.00")
}

func TestValidateInput_DuplicateWorker(t *testing.T) {
	payload := sampleBoardPayload()
	payload["workers"] = []map[string]any{
		{"id": "w1", "first_name": "A", "last_name": "B", "is_active": true},
		{"id": "w1", "first_name": "C", "last_name": "D", "is_active": true},
	}

	w := postJSON(t, testRouter(), "/validate", payload)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.Contains(t, resp["error"], "Duplicate worker ID")
}

func TestValidateInput_DuplicateScheduleEntry(t *testing.T) {
	payload := sampleBoardPayload()
	payload["schedule_entries"] = []map[string]any{
		{"worker_id": "w1", "day_of_week": 2, "start_time": "09:00:00", "end_time": "17:00:00", "is_active": true},
		{"worker_id": "w1", "day_of_week": 2, "start_time": "12:00:00", "end_time": "18:00:00", "is_active": true},
	}

	w := postJSON(t, testRouter(), "/validate", payload)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["valid"])
	assert.Contains(t, resp["error"], "Duplicate active schedule entry")
}

func TestValidateInput_Warnings(t *testing.T) {
	payload := sampleBoardPayload()
	payload["schedule_entries"] = []map[string]any{
		{"worker_id": "w1", "day_of_week": 3, "start_time": "17:00:00", "end_time": "09:00:00", "is_active": true},
	}
	payload["bookings"] = []map[string]any{
		{"start_time": "2026-09-01T10:00:00Z", "end_time": "2026-09-01T12:00:00Z", "worker_ids": []string{"ghost"}},
	}

	w := postJSON(t, testRouter(), "/validate", payload)

	var resp struct {
		Valid    bool     `json:"valid"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Valid)
	require.Len(t, resp.Warnings, 2)
	assert.Contains(t, resp.Warnings[0], "ends before it starts")
	assert.Contains(t, resp.Warnings[1], "unknown worker ID: ghost")
}
