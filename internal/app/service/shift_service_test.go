package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/model"
	"shift-tracker/internal/repository"
	"shift-tracker/internal/repository/sqlite"
	"shift-tracker/pkg/workerpool"
)

// 2024-03-06 is a Wednesday.
var fixedNow = time.Date(2024, 3, 6, 20, 0, 0, 0, time.UTC)

func setupService(t *testing.T) *ShiftServiceImpl {
	t.Helper()
	db, err := sqlite.Open(":memory:", zap.NewNop())
	require.NoError(t, err, "open test db")
	t.Cleanup(func() { db.Close() })

	repo, err := repository.Open(context.Background(), sqlite.NewRecordStore(db), zap.NewNop())
	require.NoError(t, err)

	svc := NewShiftService(repo, 15, time.UTC)
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

func filled(svc *ShiftServiceImpl) model.Shift {
	s := svc.NewShift()
	s.Location = "Harbor Bar"
	s.StartTime = "18:00"
	s.EndTime = "02:00"
	s.Tips = 120
	return s
}

func TestNewShiftDefaults(t *testing.T) {
	svc := setupService(t)
	a, b := svc.NewShift(), svc.NewShift()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "2024-03-06", a.Date)
	assert.Equal(t, 15.0, a.HourlyRate)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	cases := map[string]struct {
		field  string
		mutate func(*model.Shift)
	}{
		"no date":        {"date", func(s *model.Shift) { s.Date = "" }},
		"blank location": {"location", func(s *model.Shift) { s.Location = "  " }},
		"no start":       {"start time", func(s *model.Shift) { s.StartTime = "" }},
		"bad end":        {"end time", func(s *model.Shift) { s.EndTime = "2am" }},
		"negative tips":  {"tips", func(s *model.Shift) { s.Tips = -1 }},
		"NaN tips":       {"tips", func(s *model.Shift) { s.Tips = math.NaN() }},
		"negative rate":  {"hourly rate", func(s *model.Shift) { s.HourlyRate = -3 }},
		"infinite rate":  {"hourly rate", func(s *model.Shift) { s.HourlyRate = math.Inf(1) }},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := filled(svc)
			tc.mutate(&s)
			_, err := svc.Create(ctx, s)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
	assert.Empty(t, svc.List(), "rejected shifts are not stored")
}

func TestCreateAndSummary(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	s := filled(svc)
	s.Hours = 1
	created, err := svc.Create(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 8.0, created.Hours)

	old := filled(svc)
	old.Date = "2024-02-25"
	old.Tips = 10
	_, err = svc.Create(ctx, old)
	require.NoError(t, err)

	sum := svc.Summary(fixedNow)
	assert.Equal(t, 2, sum.ShiftCount)
	assert.Equal(t, 16.0, sum.TotalHours)
	assert.Equal(t, 130.0, sum.TotalTips)
	assert.Equal(t, 240.0, sum.TotalWages)
	assert.Equal(t, 370.0, sum.TotalEarnings)
	assert.Equal(t, 120.0+120.0, sum.ThisWeekEarnings)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	created, err := svc.Create(ctx, filled(svc))
	require.NoError(t, err)

	created.Notes = "  slow night "
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "slow night", updated.Notes)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, domain.IsNotFound(svc.Delete(ctx, created.ID)))

	_, err = svc.Update(ctx, created)
	assert.True(t, domain.IsNotFound(err))
}

func TestChildRecords(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	created, err := svc.Create(ctx, filled(svc))
	require.NoError(t, err)
	id := created.ID

	got, err := svc.AddTags(ctx, id, "busy", "patio", "busy")
	require.NoError(t, err)
	assert.Equal(t, []string{"busy", "patio"}, got.Tags)

	got, err = svc.RemoveTag(ctx, id, "busy")
	require.NoError(t, err)
	assert.Equal(t, []string{"patio"}, got.Tags)

	got, err = svc.AddCoworker(ctx, id, model.Coworker{Name: "Sam", Position: "barback"})
	require.NoError(t, err)
	require.Len(t, got.Coworkers, 1)
	assert.Equal(t, model.Coworker{
		ShiftID: id, Name: "Sam", Position: "barback",
		Location: "Harbor Bar", StartTime: "18:00", EndTime: "02:00",
	}, got.Coworkers[0])

	_, err = svc.AddCoworker(ctx, id, model.Coworker{Name: "Lee", StartTime: "7pm"})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)

	got, err = svc.AddParty(ctx, id, model.Party{Name: "Gala", Type: "wedding", Bartenders: []string{"Jo", "Sam"}})
	require.NoError(t, err)
	require.Len(t, got.Parties, 1)
	assert.Equal(t, id, got.Parties[0].ShiftID)

	got, err = svc.RemoveParty(ctx, id, 0)
	require.NoError(t, err)
	assert.Empty(t, got.Parties)

	_, err = svc.RemoveCoworker(ctx, id, 5)
	assert.ErrorAs(t, err, &verr)

	_, err = svc.AddTags(ctx, "ghost", "x")
	assert.True(t, domain.IsNotFound(err))
}

func TestAsyncServiceSerializes(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)
	pool := workerpool.NewWorkerPool(1, 16)
	defer pool.Close()
	async := NewAsyncService(pool)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := async.Run(ctx, func() error {
				_, err := svc.Create(ctx, filled(svc))
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, svc.List(), 10)

	_, err := async.SubmitAsync(ctx, func() (any, error) { return nil, errors.New("boom") })
	assert.EqualError(t, err, "boom")
}
