package domain

import (
	"context"
	"time"

	"shift-tracker/internal/model"
	"shift-tracker/internal/stats"
)

type ShiftService interface {
	NewShift() model.Shift
	Create(ctx context.Context, shift model.Shift) (model.Shift, error)
	Update(ctx context.Context, shift model.Shift) (model.Shift, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (model.Shift, error)
	List() []model.Shift
	Summary(now time.Time) stats.Summary
}
