package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
)

const (
	profileKeyPrefix = "rme:profile:"    // Serialized profile snapshot: rme:profile:{uid}
	leaderboardKey   = "rme:leaderboard" // Sorted set of uid -> points
)

// ProfileRepository holds the serialized profile snapshots in Redis. One key
// per user; the whole profile is written on every ledger mutation.
type ProfileRepository struct {
	client *redis.Client
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client *redis.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

// Get retrieves the profile snapshot for a user.
func (r *ProfileRepository) Get(ctx context.Context, uid string) (*domain.UserProfile, error) {
	data, err := r.client.Get(ctx, r.profileKey(uid)).Result()
	if err == redis.Nil {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p domain.UserProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if p.SalesHistory == nil {
		p.SalesHistory = []domain.SaleTransaction{}
	}
	return &p, nil
}

// Save writes the profile snapshot and mirrors the point total into the
// leaderboard sorted set in one pipeline.
func (r *ProfileRepository) Save(ctx context.Context, p *domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.profileKey(p.UID), data, 0)
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(p.Points), Member: p.UID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Delete removes the snapshot and the leaderboard entry (logout/reset).
func (r *ProfileRepository) Delete(ctx context.Context, uid string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.profileKey(uid))
	pipe.ZRem(ctx, leaderboardKey, uid)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}

// Leaderboard returns the top-n users by points, highest first.
func (r *ProfileRepository) Leaderboard(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	if n <= 0 {
		n = 10
	}

	members, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	out := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		uid, _ := m.Member.(string)
		entry := LeaderboardEntry{Rank: i + 1, Points: int(m.Score)}

		// Names come from the snapshots; a missing snapshot still ranks.
		if p, err := r.Get(ctx, uid); err == nil {
			entry.Name = p.Name
			entry.Avatar = p.Avatar
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *ProfileRepository) profileKey(uid string) string {
	return profileKeyPrefix + uid
}
