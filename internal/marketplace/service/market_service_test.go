package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HoneyMedusa/recycle-me/config"
	"github.com/HoneyMedusa/recycle-me/internal/ai"
	"github.com/HoneyMedusa/recycle-me/internal/marketplace/repository"
	"github.com/HoneyMedusa/recycle-me/internal/profile/domain"
	profilerepo "github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	profileservice "github.com/HoneyMedusa/recycle-me/internal/profile/service"
)

func setupMarket(t *testing.T) (*MarketService, *profileservice.LedgerService, sqlmock.Sqlmock) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	ledger := profileservice.NewLedgerService(profilerepo.NewProfileRepository(client))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	aiClient, err := ai.New(context.Background(), &config.GeminiConfig{})
	require.NoError(t, err)
	require.True(t, aiClient.MockMode())

	return NewMarketService(aiClient, ledger, repository.NewArchiveRepository(db)), ledger, mock
}

func TestMarketService_Scan(t *testing.T) {
	market, _, _ := setupMarket(t)

	analysis, err := market.Scan(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.True(t, analysis.Type.Recyclable())
	assert.Greater(t, analysis.EstimatedWeight, 0.0)
}

func TestMarketService_ConfirmSale(t *testing.T) {
	t.Run("rejects non-recyclable material before the ledger", func(t *testing.T) {
		market, ledger, _ := setupMarket(t)
		ctx := context.Background()

		_, err := ledger.EnsureProfile(ctx, "uid-1", "Thandi", "thandi@example.com", "")
		require.NoError(t, err)

		_, _, err = market.ConfirmSale(ctx, "uid-1", 10, domain.WasteNonRecyclable, 1)
		assert.ErrorIs(t, err, domain.ErrNotRecyclable)

		p, err := ledger.Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.Zero(t, p.Points)
		assert.Empty(t, p.SalesHistory)
	})

	t.Run("credits and archives a recyclable sale", func(t *testing.T) {
		market, ledger, mock := setupMarket(t)
		ctx := context.Background()

		_, err := ledger.EnsureProfile(ctx, "uid-1", "Thandi", "thandi@example.com", "")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO sales_archive`).
			WithArgs(sqlmock.AnyArg(), "uid-1", "PLASTIC", 3.2, 42.50, domain.SalePending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		profile, sale, err := market.ConfirmSale(ctx, "uid-1", 42.50, domain.WastePlastic, 3.2)
		require.NoError(t, err)
		assert.Equal(t, 42.50, profile.Earnings)
		assert.Equal(t, domain.SalePending, sale.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
