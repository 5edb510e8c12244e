package app

import (
	"fmt"
	"net/http"

	"github.com/clonkbot/cricket-auction-hub/internal/config"
	"github.com/clonkbot/cricket-auction-hub/internal/infrastructure/repository/memory"
	"github.com/clonkbot/cricket-auction-hub/internal/interfaces/httpapi"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/cache"
	idgen "github.com/clonkbot/cricket-auction-hub/internal/platform/id"
	"github.com/clonkbot/cricket-auction-hub/internal/platform/logging"
	"github.com/clonkbot/cricket-auction-hub/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	auctionStore := memory.NewAuctionStore(memory.SeedPlayers(), memory.SeedTeams(cfg.InitialBudget))
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	eventLog := memory.NewEventLog()

	var standingsCache *cache.Store
	if cfg.CacheEnabled {
		standingsCache = cache.NewStore(cfg.CacheTTL)
	}

	auctionSvc := usecase.NewAuctionService(
		auctionStore.Players(),
		auctionStore.Teams(),
		auctionStore,
		eventLog,
		logger,
		idgen.Random{},
	)
	teamSvc := usecase.NewTeamService(auctionStore.Teams())
	standingSvc := usecase.NewStandingService(auctionStore.Teams(), matchRepo, standingsCache)
	matchSvc := usecase.NewMatchService(matchRepo, logger, standingSvc.Invalidate)

	handler := httpapi.NewHandler(auctionSvc, teamSvc, matchSvc, standingSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
