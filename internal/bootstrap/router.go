package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/HoneyMedusa/recycle-me/internal/ai"
	httpapi "github.com/HoneyMedusa/recycle-me/internal/api/http"
	"github.com/HoneyMedusa/recycle-me/internal/api/http/middleware"
	authmw "github.com/HoneyMedusa/recycle-me/internal/auth/middleware"
	gameshttp "github.com/HoneyMedusa/recycle-me/internal/games/http"
	hazardshttp "github.com/HoneyMedusa/recycle-me/internal/hazards/http"
	hazardsrepo "github.com/HoneyMedusa/recycle-me/internal/hazards/repository"
	hazardssvc "github.com/HoneyMedusa/recycle-me/internal/hazards/service"
	markethttp "github.com/HoneyMedusa/recycle-me/internal/marketplace/http"
	marketrepo "github.com/HoneyMedusa/recycle-me/internal/marketplace/repository"
	marketsvc "github.com/HoneyMedusa/recycle-me/internal/marketplace/service"
	profilehttp "github.com/HoneyMedusa/recycle-me/internal/profile/http"
	profilerepo "github.com/HoneyMedusa/recycle-me/internal/profile/repository"
	profilesvc "github.com/HoneyMedusa/recycle-me/internal/profile/service"
	rewardshttp "github.com/HoneyMedusa/recycle-me/internal/rewards/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins string
	MunicipalKey   string
	DB             *pgxpool.Pool
	SQLDB          *sql.DB
	Redis          *redis.Client
	Auth           *fbauth.Client
	AI             *ai.Client
}

// BuildRouter wires every feature module onto one gin engine. It also
// returns the wired services so main can hand them to the verifier.
func BuildRouter(dep RouterDeps) (*gin.Engine, *profilesvc.LedgerService, *marketrepo.ArchiveRepository) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if dep.AllowedOrigins == "" || dep.AllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{dep.AllowedOrigins}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-User-Id", "X-API-Key", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	profileRepo := profilerepo.NewProfileRepository(dep.Redis)
	ledger := profilesvc.NewLedgerService(profileRepo)

	archive := marketrepo.NewArchiveRepository(dep.SQLDB)
	market := marketsvc.NewMarketService(dep.AI, ledger, archive)

	reportRepo := hazardsrepo.NewReportRepository(dep.DB)
	reports := hazardssvc.NewReportService(dep.AI, reportRepo, ledger)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(authmw.FirebaseAuthMiddleware(dep.Auth))

	// AI-backed endpoints burn provider quota; throttle them per user.
	aiLimiter := middleware.RateLimitMiddleware(rate.Limit(0.5), 5)
	municipalOnly := middleware.APIKeyMiddleware(dep.MunicipalKey)

	profilehttp.NewHandler(ledger).Register(api)
	markethttp.NewHandler(market).Register(api, aiLimiter)
	hazardshttp.NewHandler(reports).Register(api, aiLimiter, municipalOnly)
	gameshttp.NewHandler(dep.AI, ledger).Register(api)
	rewardshttp.NewHandler(ledger).Register(api)

	return r, ledger, archive
}
