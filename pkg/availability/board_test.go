package availability

import (
	"reflect"
	"testing"

	"github.com/lukasweir/availability-board-go/pkg/models"
)

func testWorker(id, state string) models.Worker {
	return models.Worker{ID: id, FirstName: "Test", LastName: id, State: state, IsActive: true}
}

func TestAssemble_GroupsByState(t *testing.T) {
	in := models.BoardInput{
		Workers: []models.Worker{
			testWorker("w1", "QLD"),
			testWorker("w2", "NSW"),
			testWorker("w3", "QLD"),
		},
		ScheduleEntries: []models.ScheduleEntry{
			tuesdaySchedule("w1"),
			tuesdaySchedule("w2"),
			tuesdaySchedule("w3"),
		},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState["QLD"]) != 2 {
		t.Errorf("Expected 2 workers in QLD, got %d", len(board.ByState["QLD"]))
	}
	if len(board.ByState["NSW"]) != 1 {
		t.Errorf("Expected 1 worker in NSW, got %d", len(board.ByState["NSW"]))
	}
	if board.ByState["QLD"][0].Worker.ID != "w1" || board.ByState["QLD"][1].Worker.ID != "w3" {
		t.Errorf("Expected roster order within a bucket")
	}
	if len(board.Days) != 30 {
		t.Errorf("Expected the 30-day window on the board, got %d days", len(board.Days))
	}
}

func TestAssemble_UnknownStateBucket(t *testing.T) {
	in := models.BoardInput{
		Workers:         []models.Worker{testWorker("w1", ""), testWorker("w2", "  ")},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1"), tuesdaySchedule("w2")},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState[UnknownState]) != 2 {
		t.Errorf("Expected blank state labels to land in the %q bucket, got %v", UnknownState, board.ByState)
	}
}

func TestAssemble_DropsWorkersWithNoAvailability(t *testing.T) {
	in := models.BoardInput{
		Workers:         []models.Worker{testWorker("w1", "QLD"), testWorker("w2", "QLD")},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1")},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState["QLD"]) != 1 || board.ByState["QLD"][0].Worker.ID != "w1" {
		t.Errorf("Expected w2 to be dropped for having no availability anywhere in the window")
	}
	if len(board.UnavailableWorkers) != 0 {
		t.Errorf("Expected no long-leave workers, got %d", len(board.UnavailableWorkers))
	}
}

func TestAssemble_SeasonalOnlyWorkerSurvivesFilter(t *testing.T) {
	in := models.BoardInput{
		Workers: []models.Worker{testWorker("w1", "QLD")},
		SeasonalOverrides: []models.SeasonalOverride{
			{WorkerID: "w1", Date: "2026-09-10", Parts: []string{"afternoon"}},
		},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState["QLD"]) != 1 {
		t.Fatalf("Expected a single seasonal-override day to keep the worker on the board")
	}
}

func TestAssemble_LongLeaveExclusion(t *testing.T) {
	in := models.BoardInput{
		Workers:         []models.Worker{testWorker("w1", "QLD")},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1")},
		TimeOff: []models.TimeOff{
			{WorkerID: "w1", StartDate: "2026-09-03", EndDate: "2026-09-11", Reason: "parental leave"},
		},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState) != 0 {
		t.Errorf("Expected a long-leave worker to be excluded from per-day grouping, got %v", board.ByState)
	}
	if len(board.UnavailableWorkers) != 1 {
		t.Fatalf("Expected the worker in the unavailable list, got %d entries", len(board.UnavailableWorkers))
	}
	if got := board.UnavailableWorkers[0].TimeOff.Reason; got != "parental leave" {
		t.Errorf("Expected the triggering range to be surfaced, got reason %q", got)
	}
}

func TestAssemble_SevenDayLeaveStillEvaluated(t *testing.T) {
	in := models.BoardInput{
		Workers:         []models.Worker{testWorker("w1", "QLD")},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1")},
		TimeOff: []models.TimeOff{
			{WorkerID: "w1", StartDate: "2026-09-01", EndDate: "2026-09-08", Reason: "holiday"},
		},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.UnavailableWorkers) != 0 {
		t.Fatalf("Expected a 7-day span to stay under the long-leave threshold")
	}
	workers := board.ByState["QLD"]
	if len(workers) != 1 {
		t.Fatalf("Expected the worker to be evaluated per day, got %v", board.ByState)
	}

	days := workers[0].Days
	if !days[0].IsUnavailable || days[0].UnavailabilityReason != "holiday" {
		t.Errorf("Expected 2026-09-01 inside the range to resolve unavailable")
	}
	if !days[7].IsUnavailable {
		t.Errorf("Expected the inclusive end date 2026-09-08 to resolve unavailable")
	}
	// 2026-09-15 is the next Tuesday after the range ends
	if !days[14].IsAvailable {
		t.Errorf("Expected the Tuesday after the range to resolve available")
	}
}

func TestAssemble_InactiveWorkersSkipped(t *testing.T) {
	inactive := testWorker("w1", "QLD")
	inactive.IsActive = false

	in := models.BoardInput{
		Workers:         []models.Worker{inactive},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1")},
	}

	board := Assemble(in, testAnchor, 30)

	if len(board.ByState) != 0 || len(board.UnavailableWorkers) != 0 {
		t.Errorf("Expected inactive workers to be skipped entirely")
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	in := models.BoardInput{
		Workers:         []models.Worker{testWorker("w1", "QLD"), testWorker("w2", "")},
		ScheduleEntries: []models.ScheduleEntry{tuesdaySchedule("w1"), tuesdaySchedule("w2")},
		TimeOff: []models.TimeOff{
			{WorkerID: "w1", StartDate: "2026-09-02", EndDate: "2026-09-04", Reason: "course"},
		},
		SeasonalOverrides: []models.SeasonalOverride{
			{WorkerID: "w2", Date: "2026-09-07", Parts: []string{"anytime"}},
		},
	}

	first := Assemble(in, testAnchor, 60)
	second := Assemble(in, testAnchor, 60)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical inputs to produce an identical board")
	}
}
