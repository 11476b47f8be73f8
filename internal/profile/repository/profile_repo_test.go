package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

func setupRepo(t *testing.T) *ProfileRepository {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewProfileRepository(client)
}

func TestProfileRepository_SaveAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := domain.NewProfile("uid-1", "Thandi", "thandi@example.com", "0821234567")
	p.ApplyGamePoints(120)

	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Get(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, p.UID, got.UID)
	assert.Equal(t, p.Points, got.Points)
	assert.Equal(t, p.Badges, got.Badges)
	assert.NotNil(t, got.SalesHistory)
}

func TestProfileRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestProfileRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := domain.NewProfile("uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Delete(ctx, "uid-1"))

	_, err := repo.Get(ctx, "uid-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	entries, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProfileRepository_Leaderboard(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, u := range []struct {
		uid    string
		name   string
		points int
	}{
		{"uid-1", "Thandi", 300},
		{"uid-2", "Sipho", 900},
		{"uid-3", "Lerato", 150},
	} {
		p := domain.NewProfile(u.uid, u.name, u.name+"@example.com", "")
		p.ApplyGamePoints(u.points)
		require.NoError(t, repo.Save(ctx, p))
	}

	entries, err := repo.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "Sipho", entries[0].Name)
	assert.Equal(t, 900, entries[0].Points)
	assert.Equal(t, "Thandi", entries[1].Name)
}
