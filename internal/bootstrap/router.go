package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/autofounder/deck-backend/internal/api/http"
	"github.com/autofounder/deck-backend/internal/auth"
	"github.com/autofounder/deck-backend/internal/auth/middleware"
	deckhttp "github.com/autofounder/deck-backend/internal/deck/http"
	"github.com/autofounder/deck-backend/internal/deck/service"
	"github.com/autofounder/deck-backend/internal/export"
	"github.com/autofounder/deck-backend/internal/investors"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	Redis *redis.Client
	DB    *pgxpool.Pool // nil when the archive is disabled

	DeckService *service.DeckService
	Exporter    *export.Exporter
	Uploader    *export.Uploader // nil when no bucket configured
	Matcher     *investors.Matcher

	// AuthClient enables Firebase token verification; when nil the
	// development fallback identity is used instead.
	AuthClient     *fbauth.Client
	AllowedOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-User-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	if dep.AuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(dep.AuthClient))
	} else {
		api.Use(auth.OptionalUser())
	}

	deckHandler := deckhttp.New(dep.DeckService, dep.Exporter, dep.Uploader)
	deckHandler.Register(api.Group("/decks"))

	investorHandler := investors.NewHandler(dep.Matcher)
	investorHandler.Register(api.Group("/investors"))

	return r
}
