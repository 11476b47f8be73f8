package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/config"
	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/auth"
	"github.com/HoneyMedusa/recycle-me/internal/marketplace/repository"
	"github.com/HoneyMedusa/recycle-me/internal/marketplace/service"
	profilerepo "github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

func setupMarketRouter(t *testing.T) (*gin.Engine, *profileservice.LedgerService, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	ledger := profileservice.NewLedgerService(profilerepo.NewProfileRepository(client))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	aiClient, err := ai.New(context.Background(), &config.GeminiConfig{})
	require.NoError(t, err)

	market := service.NewMarketService(aiClient, ledger, repository.NewArchiveRepository(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.CtxUserUID, "uid-1")
		c.Next()
	})
	NewHandler(market).Register(r, func(c *gin.Context) { c.Next() })
	return r, ledger, mock
}

func TestConfirmSaleRejectsNonRecyclable(t *testing.T) {
	r, ledger, _ := setupMarketRouter(t)

	_, err := ledger.EnsureProfile(context.Background(), "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)

	body, _ := json.Marshal(gin.H{"material_type": "NON_RECYCLABLE", "weight": 1.0, "value": 5.0})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/market/sales", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	p, err := ledger.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Empty(t, p.SalesHistory)
}

func TestConfirmSaleCreatesListing(t *testing.T) {
	r, ledger, mock := setupMarketRouter(t)

	_, err := ledger.EnsureProfile(context.Background(), "uid-1", "Thandi", "thandi@example.com", "")
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO sales_archive`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(gin.H{"material_type": "PLASTIC", "weight": 3.2, "value": 42.50})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/market/sales", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Pending Verification")

	p, err := ledger.Get(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Len(t, p.SalesHistory, 1)
	assert.Equal(t, 50, p.Points)
	require.NoError(t, mock.ExpectationsWereMet())
}
