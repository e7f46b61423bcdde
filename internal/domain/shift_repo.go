package domain

import (
	"context"

	"shift-tracker/internal/model"
)

// ShiftsKey is the record under which the whole shift collection is stored.
const ShiftsKey = "bartending-shifts"

type ShiftRepo interface {
	Add(ctx context.Context, shift model.Shift) error
	Update(ctx context.Context, shift model.Shift) error
	Remove(ctx context.Context, id string) error
	Get(id string) (model.Shift, error)
	ListSortedByDateDescending() []model.Shift
}
