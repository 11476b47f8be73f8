package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	"github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

func setupRouter(t *testing.T) (*gin.Engine, *service.LedgerService) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ledger := service.NewLedgerService(repository.NewProfileRepository(client))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserUID, "uid-1")
		c.Next()
	})
	NewHandler(ledger).Register(r)
	return r, ledger
}

func TestLoginCreatesProfile(t *testing.T) {
	r, ledger := setupRouter(t)

	body, _ := json.Marshal(gin.H{"name": "Thandi", "email": "thandi@example.com"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/session", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	p, err := ledger.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Thandi", p.Name)
	assert.Zero(t, p.Points)
}

func TestGetProfileNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r, ledger := setupRouter(t)

	_, err := ledger.EnsureProfile(context.Background(), "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{"name": "Thandiwe", "phone": "+27115551234"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/profile", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	p, err := ledger.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Thandiwe", p.Name)
	assert.Equal(t, "+27115551234", p.Phone)
	assert.Equal(t, "thandi@example.com", p.Email)
}

func TestLogoutResetsProfile(t *testing.T) {
	r, ledger := setupRouter(t)

	ctx := context.Background()
	_, err := ledger.EnsureProfile(ctx, "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)
	_, err = ledger.GamePoints(ctx, "uid-1", 80)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err = ledger.Get(ctx, "uid-1")
	assert.Error(t, err)
}

func TestLeaderboardEndpoint(t *testing.T) {
	r, ledger := setupRouter(t)

	ctx := context.Background()
	_, err := ledger.EnsureProfile(ctx, "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)
	_, err = ledger.GamePoints(ctx, "uid-1", 120)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Leaderboard []struct {
			Rank   int    `json:"rank"`
			Name   string `json:"name"`
			Points int    `json:"points"`
		} `json:"leaderboard"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, 1, resp.Leaderboard[0].Rank)
	assert.Equal(t, "Thandi", resp.Leaderboard[0].Name)
	assert.Equal(t, 120, resp.Leaderboard[0].Points)
}
