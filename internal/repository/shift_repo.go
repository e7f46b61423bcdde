// Package repository holds the shift collection in memory and writes it
// through to a record store after every change.
package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/model"
)

type ShiftRepo struct {
	mu     sync.Mutex
	record domain.Record[[]model.Shift]
	shifts []model.Shift
	log    *zap.Logger
}

var _ domain.ShiftRepo = (*ShiftRepo)(nil)

// Open reads the stored collection once. A corrupt record is logged and
// treated as empty; it is overwritten by the next successful save.
func Open(ctx context.Context, store domain.RecordStore, logger *zap.Logger) (*ShiftRepo, error) {
	r := &ShiftRepo{
		record: domain.NewRecord[[]model.Shift](store, domain.ShiftsKey),
		log:    logger,
	}

	shifts, err := r.record.Load(ctx, nil)
	var corrupt *domain.StorageCorruptError
	switch {
	case errors.As(err, &corrupt):
		logger.Warn("stored shifts are unreadable, starting empty",
			zap.String("key", corrupt.Key), zap.Error(corrupt.Err))
		shifts = nil
	case err != nil:
		return nil, err
	}

	seen := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		if _, dup := seen[s.ID]; dup || s.ID == "" {
			logger.Warn("dropping stored shift with reused or empty id", zap.String("id", s.ID))
			continue
		}
		seen[s.ID] = struct{}{}
		s.Normalize()
		r.shifts = append(r.shifts, s)
	}
	logger.Info("shifts loaded", zap.Int("count", len(r.shifts)))
	return r, nil
}

func (r *ShiftRepo) Add(ctx context.Context, shift model.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(shift.ID) >= 0 {
		return fmt.Errorf("add %s: %w", shift.ID, domain.ErrDuplicateID)
	}
	shift = shift.Clone()
	shift.Normalize()

	next := append(slices.Clip(r.shifts), shift)
	return r.commit(ctx, next)
}

// Update replaces the shift with the same id, keeping its position.
func (r *ShiftRepo) Update(ctx context.Context, shift model.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(shift.ID)
	if i < 0 {
		return &domain.NotFoundError{ID: shift.ID}
	}
	shift = shift.Clone()
	shift.Normalize()

	next := slices.Clone(r.shifts)
	next[i] = shift
	return r.commit(ctx, next)
}

// Remove deletes a shift together with its coworkers and parties.
func (r *ShiftRepo) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return &domain.NotFoundError{ID: id}
	}
	next := slices.Delete(slices.Clone(r.shifts), i, i+1)
	return r.commit(ctx, next)
}

func (r *ShiftRepo) Get(id string) (model.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.Shift{}, &domain.NotFoundError{ID: id}
	}
	return r.shifts[i].Clone(), nil
}

// ListSortedByDateDescending returns copies of all shifts, newest date first.
// Shifts on the same date keep the order they were added in.
func (r *ShiftRepo) ListSortedByDateDescending() []model.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Shift, len(r.shifts))
	for i, s := range r.shifts {
		out[i] = s.Clone()
	}
	slices.SortStableFunc(out, func(a, b model.Shift) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

func (r *ShiftRepo) index(id string) int {
	return slices.IndexFunc(r.shifts, func(s model.Shift) bool { return s.ID == id })
}

// commit persists next and only then makes it the live collection, so a
// failed write leaves memory and storage in agreement.
func (r *ShiftRepo) commit(ctx context.Context, next []model.Shift) error {
	if next == nil {
		next = []model.Shift{}
	}
	if err := r.record.Save(ctx, next); err != nil {
		return err
	}
	r.shifts = next
	r.log.Debug("shifts saved", zap.Int("count", len(next)))
	return nil
}
