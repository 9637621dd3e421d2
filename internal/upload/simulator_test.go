package upload_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ytget/image-drop/internal/model"
	"github.com/ytget/image-drop/internal/testutil"
	"github.com/ytget/image-drop/internal/upload"
)

type progressRecorder struct {
	percents  []int
	completes int
}

func (r *progressRecorder) onProgress(percent int) {
	r.percents = append(r.percents, percent)
}

func (r *progressRecorder) onComplete() {
	r.completes++
}

func TestSimulator_ProgressSequence(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	sim := upload.NewSimulator(scheduler, upload.NewRandomPacer())

	rec := &progressRecorder{}
	sim.Start("photo.png", rec.onProgress, rec.onComplete)
	scheduler.RunUntilIdle(1000)

	if len(rec.percents) == 0 {
		t.Fatal("Expected progress updates")
	}
	if rec.percents[0] <= 0 {
		t.Errorf("Expected first progress > 0, got %d", rec.percents[0])
	}
	for i := 1; i < len(rec.percents); i++ {
		if rec.percents[i] < rec.percents[i-1] {
			t.Fatalf("Progress decreased: %v", rec.percents)
		}
		if step := rec.percents[i] - rec.percents[i-1]; step > upload.MaxStep {
			t.Fatalf("Step %d exceeds MaxStep: %v", step, rec.percents)
		}
	}
	if last := rec.percents[len(rec.percents)-1]; last != 100 {
		t.Errorf("Expected sequence to end at 100, got %d", last)
	}
	if rec.completes != 1 {
		t.Errorf("Expected exactly one completion, got %d", rec.completes)
	}
	if sim.Active() {
		t.Error("Expected simulator to be idle after completion")
	}
}

func TestSimulator_ClampsLastStep(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 17, Delay: 150 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	rec := &progressRecorder{}
	sim.Start("photo.png", rec.onProgress, rec.onComplete)
	scheduler.RunUntilIdle(100)

	expected := []int{17, 34, 51, 68, 85, 100}
	if len(rec.percents) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, rec.percents)
	}
	for i := range expected {
		if rec.percents[i] != expected[i] {
			t.Errorf("Tick %d: expected %d, got %d", i, expected[i], rec.percents[i])
		}
	}
}

func TestSimulator_CompletesAfterSettleDelay(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 10, Delay: 200 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	rec := &progressRecorder{}
	sim.Start("photo.png", rec.onProgress, rec.onComplete)

	scheduler.Advance(2 * time.Second)
	if got := rec.percents[len(rec.percents)-1]; got != 100 {
		t.Fatalf("Expected 100%% after ten ticks, got %d", got)
	}
	task, ok := sim.Current()
	if !ok || task.Status != model.UploadStatusFinalizing {
		t.Errorf("Expected Finalizing task, got %+v (active=%v)", task, ok)
	}

	scheduler.Advance(upload.SettleDelay - time.Millisecond)
	if rec.completes != 0 {
		t.Fatal("Expected completion to wait for the settle delay")
	}

	scheduler.Advance(time.Millisecond)
	if rec.completes != 1 {
		t.Errorf("Expected completion after the settle delay, got %d", rec.completes)
	}
}

func TestSimulator_RestartCancelsPreviousRun(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 10, Delay: 200 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	first := &progressRecorder{}
	second := &progressRecorder{}

	sim.Start("first.png", first.onProgress, first.onComplete)
	scheduler.Advance(600 * time.Millisecond)
	firstTicks := len(first.percents)
	if firstTicks != 3 {
		t.Fatalf("Expected 3 ticks for first run, got %d", firstTicks)
	}

	sim.Start("second.png", second.onProgress, second.onComplete)
	scheduler.RunUntilIdle(1000)

	if len(first.percents) != firstTicks {
		t.Errorf("Stale run kept ticking: %v", first.percents)
	}
	if first.completes+second.completes != 1 {
		t.Errorf("Expected exactly one completion overall, got %d", first.completes+second.completes)
	}
	if second.completes != 1 {
		t.Errorf("Expected the newer run to complete")
	}
	if second.percents[0] != 10 {
		t.Errorf("Expected new run to restart from zero, first tick %d", second.percents[0])
	}
}

func TestSimulator_RestartDuringSettleDelay(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 50, Delay: 100 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	first := &progressRecorder{}
	second := &progressRecorder{}

	sim.Start("first.png", first.onProgress, first.onComplete)
	scheduler.Advance(200 * time.Millisecond)

	// First run is at 100% and waiting to settle
	sim.Start("second.png", second.onProgress, second.onComplete)
	scheduler.RunUntilIdle(100)

	if first.completes != 0 {
		t.Error("Expected settled completion of replaced run to be dropped")
	}
	if second.completes != 1 {
		t.Errorf("Expected one completion for the new run, got %d", second.completes)
	}
}

func TestSimulator_Cancel(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 5, Delay: 200 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	rec := &progressRecorder{}
	sim.Start("photo.png", rec.onProgress, rec.onComplete)
	scheduler.Advance(400 * time.Millisecond)

	sim.Cancel()
	sim.Cancel()

	if sim.Active() {
		t.Error("Expected simulator to be idle after Cancel")
	}
	if scheduler.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", scheduler.Pending())
	}

	scheduler.Advance(10 * time.Second)
	if len(rec.percents) != 2 || rec.completes != 0 {
		t.Errorf("Expected no activity after Cancel, got %v completes=%d", rec.percents, rec.completes)
	}
}

func TestSimulator_ActiveThroughSettle(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	pacer := testutil.FixedPacer{StepSize: 50, Delay: 100 * time.Millisecond}
	sim := upload.NewSimulator(scheduler, pacer)

	rec := &progressRecorder{}
	sim.Start("photo.png", rec.onProgress, rec.onComplete)
	if !sim.Active() {
		t.Fatal("Expected a pending run to be active")
	}

	scheduler.Advance(200 * time.Millisecond)
	if scheduler.Now() != 200*time.Millisecond {
		t.Fatalf("Expected virtual time 200ms, got %v", scheduler.Now())
	}
	task, ok := sim.Current()
	if !ok || task.Status != model.UploadStatusFinalizing {
		t.Fatalf("Expected a finalizing run at 100%%, got %+v (ok=%v)", task, ok)
	}
	if !sim.Active() {
		t.Error("Expected the run to stay active while finalizing")
	}

	scheduler.Advance(upload.SettleDelay)
	if scheduler.Now() != 200*time.Millisecond+upload.SettleDelay {
		t.Fatalf("Unexpected virtual time %v", scheduler.Now())
	}
	if sim.Active() {
		t.Error("Expected the run to be inactive once completed")
	}
	if rec.completes != 1 {
		t.Errorf("Expected one completion, got %d", rec.completes)
	}
}

func TestSimulator_TaskID(t *testing.T) {
	scheduler := testutil.NewManualScheduler()
	sim := upload.NewSimulator(scheduler, nil)

	task1 := sim.Start("a.png", nil, nil)
	task2 := sim.Start("b.png", nil, nil)

	if task1.ID == task2.ID {
		t.Error("Expected different task IDs")
	}
	if !strings.HasPrefix(task1.ID, upload.TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", upload.TaskIDPrefix, task1.ID)
	}
	if len(task1.ID) != len(upload.TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(upload.TaskIDPrefix)+36, len(task1.ID), task1.ID)
	}
	if task2.FileName != "b.png" || task2.Status != model.UploadStatusPending || task2.Percent != 0 {
		t.Errorf("Unexpected initial task: %+v", task2)
	}
}
