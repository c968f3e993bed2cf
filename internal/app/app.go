package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/pingpong-league/internal/config"
	"github.com/riskibarqy/pingpong-league/internal/domain/archive"
	"github.com/riskibarqy/pingpong-league/internal/domain/match"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
	cacherepo "github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pingpong-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/pingpong-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/pingpong-league/internal/platform/cache"
	idgen "github.com/riskibarqy/pingpong-league/internal/platform/id"
	"github.com/riskibarqy/pingpong-league/internal/platform/logging"
	"github.com/riskibarqy/pingpong-league/internal/platform/schedule"
	"github.com/riskibarqy/pingpong-league/internal/usecase"
)

// App bundles the HTTP server with the weekly rollover trigger and the
// resources both need released on shutdown.
type App struct {
	Server    *http.Server
	Scheduler *schedule.Weekly

	closeDB func() error
}

func New(cfg config.Config, logger *logging.Logger, slogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if slogger == nil {
		slogger = slog.Default()
	}

	playerRepo, matchRepo, archiveRepo, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.CacheEnabled {
		archiveRepo = cacherepo.NewArchiveRepository(archiveRepo, cache.NewStore(cfg.CacheTTL))
	}

	authSvc := usecase.NewAuthService(playerRepo, idgen.NewRandomGenerator(), cfg.JWTSecret, cfg.JWTTokenTTL)
	playerSvc := usecase.NewPlayerService(playerRepo)
	matchSvc := usecase.NewMatchService(playerRepo, matchRepo)
	leaderboardSvc := usecase.NewLeaderboardService(playerRepo, archiveRepo, logger)
	archiveSvc := usecase.NewArchiveService(archiveRepo)

	handler := httpapi.NewHandler(authSvc, playerSvc, matchSvc, leaderboardSvc, archiveSvc, slogger)
	router := httpapi.NewRouter(handler, authSvc, slogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var scheduler *schedule.Weekly
	if cfg.WeeklyResetEnabled {
		scheduler = schedule.NewWeekly(
			func(ctx context.Context) error {
				_, err := leaderboardSvc.Rollover(ctx)
				return err
			},
			logger,
			schedule.WithMisfireGrace(cfg.WeeklyResetGrace),
		)
	}

	return &App{
		Server:    server,
		Scheduler: scheduler,
		closeDB:   closeDB,
	}, nil
}

// Close releases the database handle, if any.
func (a *App) Close() error {
	if a.closeDB == nil {
		return nil
	}
	return a.closeDB()
}

// buildRepositories picks the storage backend from DB_URL: postgres
// with otel instrumentation when set, an in-memory store otherwise.
func buildRepositories(cfg config.Config, logger *logging.Logger) (
	player.Repository,
	match.Repository,
	archive.Repository,
	func() error,
	error,
) {
	if cfg.DBURL == "" {
		logger.Info("database url empty, using in-memory repositories")

		playerRepo := memory.NewPlayerRepository()
		return playerRepo,
			memory.NewMatchRepository(playerRepo),
			memory.NewArchiveRepository(playerRepo),
			nil,
			nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("postgres connected", "database", dbNameFromURL(cfg.DBURL))

	return postgres.NewPlayerRepository(db),
		postgres.NewMatchRepository(db),
		postgres.NewArchiveRepository(db),
		db.Close,
		nil
}
