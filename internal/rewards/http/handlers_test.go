package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profilerepo "github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

func setupRewards(t *testing.T) (*gin.Engine, *profileservice.LedgerService) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ledger := profileservice.NewLedgerService(profilerepo.NewProfileRepository(client))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserUID, "uid-1")
		c.Next()
	})
	NewHandler(ledger).Register(r)
	return r, ledger
}

func redeem(r *gin.Engine, badgeID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rewards/redeem/"+badgeID, nil))
	return w
}

func TestPartnersCatalog(t *testing.T) {
	r, _ := setupRewards(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rewards/partners", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "partners")
}

func TestRedeemRequiresUnlockedBadge(t *testing.T) {
	r, ledger := setupRewards(t)
	ctx := context.Background()

	_, err := ledger.EnsureProfile(ctx, "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)

	t.Run("locked badge is refused", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, redeem(r, domain.BadgeNewbie).Code)
	})

	t.Run("unknown badge has no reward", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, redeem(r, "no_such_badge").Code)
	})

	t.Run("unlocked badge redeems", func(t *testing.T) {
		_, err := ledger.GamePoints(ctx, "uid-1", 10)
		require.NoError(t, err)

		w := redeem(r, domain.BadgeNewbie)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "claim")
	})
}
