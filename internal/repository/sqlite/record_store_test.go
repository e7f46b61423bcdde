package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRecordStore(t *testing.T) *RecordStore {
	t.Helper()
	db, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err, "open test db")
	t.Cleanup(func() { db.Close() })
	return NewRecordStore(db)
}

func TestRecordStoreGetPut(t *testing.T) {
	ctx := context.Background()
	rs := setupRecordStore(t)

	_, ok, err := rs.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, rs.Put(ctx, "k", []byte(`[1,2]`)))
	got, ok, err := rs.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(got))

	require.NoError(t, rs.Put(ctx, "k", []byte(`[]`)))
	got, _, err = rs.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestRecordStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shifts.db")

	db, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, NewRecordStore(db).Put(ctx, "k", []byte(`"v"`)))
	require.NoError(t, db.Close())

	db, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	got, ok, err := NewRecordStore(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"v"`, string(got))
}
