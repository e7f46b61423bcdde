package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/model"
	"shift-tracker/internal/stats"
	"shift-tracker/pkg/clock"
	"shift-tracker/pkg/format"
)

type ShiftServiceImpl struct {
	Repo        domain.ShiftRepo
	DefaultRate float64
	Location    *time.Location
	Now         func() time.Time
}

var _ domain.ShiftService = (*ShiftServiceImpl)(nil)

func NewShiftService(repo domain.ShiftRepo, defaultRate float64, loc *time.Location) *ShiftServiceImpl {
	if loc == nil {
		loc = time.Local
	}
	return &ShiftServiceImpl{Repo: repo, DefaultRate: defaultRate, Location: loc, Now: time.Now}
}

func (s *ShiftServiceImpl) today() time.Time {
	return s.Now().In(s.Location)
}

// NewShift returns a blank shift with a fresh id, today's date and the
// default hourly rate.
func (s *ShiftServiceImpl) NewShift() model.Shift {
	return model.Shift{
		ID:         uuid.NewString(),
		Date:       s.today().Format(format.DateLayout),
		HourlyRate: s.DefaultRate,
	}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, shift model.Shift) (model.Shift, error) {
	if shift.ID == "" {
		shift.ID = uuid.NewString()
	}
	shift = trimShift(shift)
	if err := Validate(shift); err != nil {
		return model.Shift{}, err
	}
	if err := s.Repo.Add(ctx, shift); err != nil {
		return model.Shift{}, err
	}
	return s.Repo.Get(shift.ID)
}

func (s *ShiftServiceImpl) Update(ctx context.Context, shift model.Shift) (model.Shift, error) {
	shift = trimShift(shift)
	if err := Validate(shift); err != nil {
		return model.Shift{}, err
	}
	if err := s.Repo.Update(ctx, shift); err != nil {
		return model.Shift{}, err
	}
	return s.Repo.Get(shift.ID)
}

// Edit loads a shift, applies fn to it and stores the result.
func (s *ShiftServiceImpl) Edit(ctx context.Context, id string, fn func(*model.Shift) error) (model.Shift, error) {
	shift, err := s.Repo.Get(id)
	if err != nil {
		return model.Shift{}, err
	}
	if err := fn(&shift); err != nil {
		return model.Shift{}, err
	}
	return s.Update(ctx, shift)
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	return s.Repo.Remove(ctx, id)
}

func (s *ShiftServiceImpl) Get(id string) (model.Shift, error) {
	return s.Repo.Get(id)
}

func (s *ShiftServiceImpl) List() []model.Shift {
	return s.Repo.ListSortedByDateDescending()
}

// Summary computes dashboard figures as of now, on the service's calendar.
func (s *ShiftServiceImpl) Summary(now time.Time) stats.Summary {
	return stats.Compute(s.Repo.ListSortedByDateDescending(), now.In(s.Location))
}

func (s *ShiftServiceImpl) AddTags(ctx context.Context, id string, tags ...string) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		for _, t := range tags {
			sh.AddTag(t)
		}
		return nil
	})
}

func (s *ShiftServiceImpl) RemoveTag(ctx context.Context, id, tag string) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		sh.RemoveTag(tag)
		return nil
	})
}

// AddCoworker appends c to the shift. Blank location and times are taken
// from the shift itself.
func (s *ShiftServiceImpl) AddCoworker(ctx context.Context, id string, c model.Coworker) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		base := sh.NewCoworker()
		base.Name, base.Position = c.Name, c.Position
		if c.Location != "" {
			base.Location = c.Location
		}
		if c.StartTime != "" || c.EndTime != "" {
			base.StartTime, base.EndTime = c.StartTime, c.EndTime
		}
		sh.Coworkers = append(sh.Coworkers, base)
		return nil
	})
}

func (s *ShiftServiceImpl) RemoveCoworker(ctx context.Context, id string, i int) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		if !sh.RemoveCoworker(i) {
			return &domain.ValidationError{Field: "coworker", Reason: "no such coworker"}
		}
		return nil
	})
}

func (s *ShiftServiceImpl) AddParty(ctx context.Context, id string, p model.Party) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		p.ShiftID = sh.ID
		sh.Parties = append(sh.Parties, p)
		return nil
	})
}

func (s *ShiftServiceImpl) RemoveParty(ctx context.Context, id string, i int) (model.Shift, error) {
	return s.Edit(ctx, id, func(sh *model.Shift) error {
		if !sh.RemoveParty(i) {
			return &domain.ValidationError{Field: "party", Reason: "no such party"}
		}
		return nil
	})
}

// Validate rejects shifts missing a date, location or time range, and
// shifts carrying malformed values.
func Validate(s model.Shift) error {
	switch {
	case s.Date == "":
		return &domain.ValidationError{Field: "date", Reason: "required"}
	case s.Location == "":
		return &domain.ValidationError{Field: "location", Reason: "required"}
	case s.StartTime == "":
		return &domain.ValidationError{Field: "start time", Reason: "required"}
	case s.EndTime == "":
		return &domain.ValidationError{Field: "end time", Reason: "required"}
	}
	if _, err := time.Parse(format.DateLayout, s.Date); err != nil {
		return &domain.ValidationError{Field: "date", Reason: "must look like 2024-03-05"}
	}
	if !clock.Valid(s.StartTime) {
		return &domain.ValidationError{Field: "start time", Reason: "must look like 18:30"}
	}
	if !clock.Valid(s.EndTime) {
		return &domain.ValidationError{Field: "end time", Reason: "must look like 18:30"}
	}
	if !finite(s.Tips) {
		return &domain.ValidationError{Field: "tips", Reason: "must be a finite amount"}
	}
	if s.Tips < 0 {
		return &domain.ValidationError{Field: "tips", Reason: "cannot be negative"}
	}
	if !finite(s.HourlyRate) {
		return &domain.ValidationError{Field: "hourly rate", Reason: "must be a finite amount"}
	}
	if s.HourlyRate < 0 {
		return &domain.ValidationError{Field: "hourly rate", Reason: "cannot be negative"}
	}
	for _, c := range s.Coworkers {
		if !optionalTime(c.StartTime) || !optionalTime(c.EndTime) {
			return &domain.ValidationError{Field: "coworker " + c.Name, Reason: "times must look like 18:30"}
		}
	}
	for _, p := range s.Parties {
		if !optionalTime(p.StartTime) || !optionalTime(p.EndTime) {
			return &domain.ValidationError{Field: "party " + p.Name, Reason: "times must look like 18:30"}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func optionalTime(v string) bool {
	return v == "" || clock.Valid(v)
}

func trimShift(s model.Shift) model.Shift {
	s.Date = strings.TrimSpace(s.Date)
	s.StartTime = strings.TrimSpace(s.StartTime)
	s.EndTime = strings.TrimSpace(s.EndTime)
	s.Location = strings.TrimSpace(s.Location)
	s.Notes = strings.TrimSpace(s.Notes)
	return s
}
