package participant

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/store"
	"eventdesk/internal/store/storetest"
)

const table = "participants"

func newRepo(t *testing.T) *Repository {
	t.Helper()
	fake := storetest.New()
	fake.CreateTable(table, "email")
	return NewRepository(store.NewWithClient(fake), table)
}

func TestRegisterGeneratesPassword(t *testing.T) {
	repo := newRepo(t)

	p, err := repo.Register(context.Background(), RegisterInput{Email: "alice@example.com", Name: "Alice", Team: "red"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{5}$`), p.Password)
	assert.False(t, p.CheckedIn)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestRegisterSameEmailOverwrites(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.Register(ctx, RegisterInput{Email: "alice@example.com", Name: "Alice", Hotel: "North"})
	require.NoError(t, err)
	second, err := repo.Register(ctx, RegisterInput{Email: "alice@example.com", Name: "Alicia", Hotel: "South"})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Alicia", all[0].Name)
	assert.Equal(t, "South", all[0].Hotel)
	assert.Equal(t, second.Password, all[0].Password)
	assert.NotEqual(t, first.Password, all[0].Password, "second registration should replace the whole record")
}

func TestGetByEmailLowercasesInput(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Register(ctx, RegisterInput{Email: "alice@example.com"})
	require.NoError(t, err)

	p, err := repo.GetByEmail(ctx, "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "alice@example.com", p.Email)
}

func TestGetByEmailMixedCaseRecordUnreachable(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	// Stored as submitted; the lookup lower-cases only the input.
	_, err := repo.Register(ctx, RegisterInput{Email: "Bob@example.com"})
	require.NoError(t, err)

	p, err := repo.GetByEmail(ctx, "Bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetByEmailAbsent(t *testing.T) {
	repo := newRepo(t)

	p, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDeleteAbsentSucceeds(t *testing.T) {
	repo := newRepo(t)

	assert.NoError(t, repo.Delete(context.Background(), "nobody@example.com"))
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p, err := repo.Register(ctx, RegisterInput{Email: "alice@example.com"})
	require.NoError(t, err)

	ok, err := repo.Login(ctx, "alice@example.com", p.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Login(ctx, "alice@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Login(ctx, "nobody@example.com", p.Password)
	require.NoError(t, err)
	assert.False(t, ok)
}
