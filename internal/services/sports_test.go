package services

import (
	"errors"
	"testing"
	"time"

	"github.com/homemanager/homemanager/internal/model"
)

func TestCreateActivityValidation(t *testing.T) {
	e := newEnv()
	_, err := e.sports.CreateActivity(CreateActivityRequest{Type: "juggling", Name: "x", Duration: 10})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("unknown type: %v", err)
	}
	_, err = e.sports.CreateActivity(CreateActivityRequest{Type: model.ActivityRunning, Name: "run", Duration: -5})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("negative duration: %v", err)
	}
}

func TestUpdateActivityPatchesSelectedFields(t *testing.T) {
	e := newEnv()
	dist := 5.2
	rec, err := e.sports.CreateActivity(CreateActivityRequest{
		Type: model.ActivityRunning, Name: "morning run", Duration: 30,
		Distance: &dist, Date: time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	dur := 45
	got, err := e.sports.UpdateActivity(rec.ID, UpdateActivityRequest{Duration: &dur})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Duration != 45 || got.Name != "morning run" || got.Distance == nil || *got.Distance != 5.2 {
		t.Fatalf("unexpected record after patch: %+v", got)
	}
}

func TestCreateGoalRequiresPositiveTarget(t *testing.T) {
	e := newEnv()
	_, err := e.sports.CreateGoal(CreateGoalRequest{
		Period: model.GoalWeekly, Metric: model.MetricDistance, Target: 0,
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("zero target: %v", err)
	}
}

func TestGoalCurrentIsManuallyMaintained(t *testing.T) {
	e := newEnv()
	g, err := e.sports.CreateGoal(CreateGoalRequest{
		Period: model.GoalWeekly, Metric: model.MetricDistance, Target: 20,
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Current != 0 {
		t.Fatalf("new goal must start at zero, got %v", g.Current)
	}

	dist := 5.0
	e.sports.CreateActivity(CreateActivityRequest{
		Type: model.ActivityRunning, Name: "run", Duration: 30, Distance: &dist,
		Date: time.Date(2025, 3, 4, 7, 0, 0, 0, time.UTC),
	})
	goals := e.sports.Goals()
	if goals[0].Current != 0 {
		t.Fatalf("goal progress moved without an explicit write: %v", goals[0].Current)
	}

	cur := 12.5
	got, err := e.sports.UpdateGoal(g.ID, UpdateGoalRequest{Current: &cur})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Current != 12.5 {
		t.Fatalf("expected current 12.5, got %v", got.Current)
	}
}

func TestDeleteActivity(t *testing.T) {
	e := newEnv()
	rec, _ := e.sports.CreateActivity(CreateActivityRequest{Type: model.ActivityGym, Name: "lift", Duration: 60})
	if err := e.sports.DeleteActivity(rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := e.sports.DeleteActivity(rec.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}
