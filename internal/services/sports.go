package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
	"github.com/homemanager/homemanager/internal/validate"
)

// SportsService owns activities and goals. Goal progress is an independently
// maintained counter, deliberately not derived from the activity collection.
type SportsService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewSportsService(s *store.Store, log zerolog.Logger) *SportsService {
	return &SportsService{store: s, log: log}
}

type CreateActivityRequest struct {
	Type     model.ActivityType
	Name     string
	Duration int
	Distance *float64
	Calories *int
	Date     time.Time
	Notes    *string
}

func (s *SportsService) CreateActivity(req CreateActivityRequest) (model.Activity, error) {
	if err := validate.Enum("activity type", req.Type.Valid()); err != nil {
		return model.Activity{}, invalid(err)
	}
	if err := validate.NonEmpty("name", req.Name); err != nil {
		return model.Activity{}, invalid(err)
	}
	if err := validate.NonNegativeInt("duration", req.Duration); err != nil {
		return model.Activity{}, invalid(err)
	}
	if req.Distance != nil {
		if err := validate.NonNegativeFloat("distance", *req.Distance); err != nil {
			return model.Activity{}, invalid(err)
		}
	}
	if req.Calories != nil {
		if err := validate.NonNegativeInt("calories", *req.Calories); err != nil {
			return model.Activity{}, invalid(err)
		}
	}
	rec := s.store.Activities().Create(model.Activity{
		Type:     req.Type,
		Name:     req.Name,
		Duration: req.Duration,
		Distance: req.Distance,
		Calories: req.Calories,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	s.log.Debug().Str("activity", rec.ID).Msg("activity logged")
	return rec, nil
}

type UpdateActivityRequest struct {
	Type     *model.ActivityType
	Name     *string
	Duration *int
	Distance *float64
	Calories *int
	Date     *time.Time
	Notes    *string
}

func (s *SportsService) UpdateActivity(id string, req UpdateActivityRequest) (model.Activity, error) {
	if req.Type != nil {
		if err := validate.Enum("activity type", req.Type.Valid()); err != nil {
			return model.Activity{}, invalid(err)
		}
	}
	if req.Duration != nil {
		if err := validate.NonNegativeInt("duration", *req.Duration); err != nil {
			return model.Activity{}, invalid(err)
		}
	}
	rec, ok := s.store.Activities().Update(id, func(a model.Activity) model.Activity {
		if req.Type != nil {
			a.Type = *req.Type
		}
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.Duration != nil {
			a.Duration = *req.Duration
		}
		if req.Distance != nil {
			a.Distance = req.Distance
		}
		if req.Calories != nil {
			a.Calories = req.Calories
		}
		if req.Date != nil {
			a.Date = *req.Date
		}
		if req.Notes != nil {
			a.Notes = req.Notes
		}
		return a
	})
	if !ok {
		return model.Activity{}, notFound("activity", id)
	}
	return rec, nil
}

func (s *SportsService) DeleteActivity(id string) error {
	if !s.store.Activities().Delete(id) {
		return notFound("activity", id)
	}
	return nil
}

func (s *SportsService) Activities() []model.Activity { return s.store.Activities().Snapshot() }

type CreateGoalRequest struct {
	Period    model.GoalPeriod
	Target    float64
	Metric    model.GoalMetric
	StartDate time.Time
	EndDate   time.Time
}

func (s *SportsService) CreateGoal(req CreateGoalRequest) (model.Goal, error) {
	if err := validate.Enum("period", req.Period.Valid()); err != nil {
		return model.Goal{}, invalid(err)
	}
	if err := validate.Enum("metric", req.Metric.Valid()); err != nil {
		return model.Goal{}, invalid(err)
	}
	if err := validate.PositiveFloat("target", req.Target); err != nil {
		return model.Goal{}, invalid(err)
	}
	rec := s.store.Goals().Create(model.Goal{
		Period:    req.Period,
		Target:    req.Target,
		Metric:    req.Metric,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	return rec, nil
}

type UpdateGoalRequest struct {
	Target  *float64
	Current *float64
	EndDate *time.Time
}

func (s *SportsService) UpdateGoal(id string, req UpdateGoalRequest) (model.Goal, error) {
	if req.Target != nil {
		if err := validate.PositiveFloat("target", *req.Target); err != nil {
			return model.Goal{}, invalid(err)
		}
	}
	if req.Current != nil {
		if err := validate.NonNegativeFloat("current", *req.Current); err != nil {
			return model.Goal{}, invalid(err)
		}
	}
	rec, ok := s.store.Goals().Update(id, func(g model.Goal) model.Goal {
		if req.Target != nil {
			g.Target = *req.Target
		}
		if req.Current != nil {
			g.Current = *req.Current
		}
		if req.EndDate != nil {
			g.EndDate = *req.EndDate
		}
		return g
	})
	if !ok {
		return model.Goal{}, notFound("goal", id)
	}
	return rec, nil
}

func (s *SportsService) Goals() []model.Goal { return s.store.Goals().Snapshot() }
