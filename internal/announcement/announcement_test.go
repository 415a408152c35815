package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/store"
	"eventdesk/internal/store/storetest"
)

const table = "announcements"

func newRepo(t *testing.T) (*Repository, *store.Store) {
	t.Helper()
	fake := storetest.New()
	fake.CreateTable(table, "uuid")
	st := store.NewWithClient(fake)
	return NewRepository(st, table), st
}

func TestCreateSetsIDAndTimestamp(t *testing.T) {
	repo, _ := newRepo(t)

	a, err := repo.Create(context.Background(), "doors open at nine")
	require.NoError(t, err)

	_, err = uuid.Parse(a.UUID)
	assert.NoError(t, err)
	assert.Equal(t, "doors open at nine", a.Message)

	ts, err := time.Parse(timeLayout, a.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestListSortsDescendingByTimestamp(t *testing.T) {
	repo, st := newRepo(t)
	ctx := context.Background()

	// Seed with controlled timestamps; scan order is unspecified.
	seed := []Announcement{
		{UUID: "1", Message: "oldest", Timestamp: "2026-08-01T09:00:00.000Z"},
		{UUID: "2", Message: "newest", Timestamp: "2026-08-03T09:00:00.000Z"},
		{UUID: "3", Message: "middle", Timestamp: "2026-08-02T09:00:00.000Z"},
	}
	for _, a := range seed {
		require.NoError(t, st.AddItem(ctx, table, a))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Message)
	assert.Equal(t, "middle", got[1].Message)
	assert.Equal(t, "oldest", got[2].Message)
}

func TestTimestampOrderIsLexicographic(t *testing.T) {
	// The fixed-width layout must keep string order chronological even when
	// millisecond digits would be trimmed by a variable-width format.
	earlier := time.Date(2026, 8, 29, 12, 0, 0, 90_000_000, time.UTC).Format(timeLayout)
	later := time.Date(2026, 8, 29, 12, 0, 0, 100_000_000, time.UTC).Format(timeLayout)
	assert.Less(t, earlier, later)
}

func TestDeleteAbsentSucceeds(t *testing.T) {
	repo, _ := newRepo(t)

	assert.NoError(t, repo.Delete(context.Background(), "no-such-id"))
}

func TestDeleteRemovesAnnouncement(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, "scratch that")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, a.UUID))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
