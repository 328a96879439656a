package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/shrujal-srinath/GECC-Database/internal/config"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/postgres"
	"github.com/shrujal-srinath/GECC-Database/internal/interfaces/httpapi"
	"github.com/shrujal-srinath/GECC-Database/internal/platform/logging"
	"github.com/shrujal-srinath/GECC-Database/internal/usecase"
)

// App owns the HTTP server and, when configured, the database pool.
type App struct {
	Server *http.Server
	db     *sqlx.DB
}

type repositories struct {
	players     player.Repository
	tournaments tournament.Repository
	stats       stats.Repository
	moderation  moderation.Repository
}

// New wires the full service graph. With an empty DATABASE_URL everything
// runs on in-memory repositories, which is how local development and the
// handler tests work.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db    *sqlx.DB
		repos repositories
	)
	if cfg.DBURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory repositories")
		repos = newMemoryRepositories()
	} else {
		var err error
		db, err = ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		repos = newPostgresRepositories(db)
	}

	playerSvc := usecase.NewPlayerService(repos.players, repos.stats)
	tournamentSvc := usecase.NewTournamentService(repos.tournaments)
	statsSvc := usecase.NewStatsService(repos.stats)
	moderationSvc := usecase.NewModerationService(repos.moderation, repos.players)

	handler := httpapi.NewHandler(playerSvc, tournamentSvc, statsSvc, moderationSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// NewImportService builds the CSV loader against the configured database.
// The loader is postgres-only; an in-memory import would vanish on exit.
func NewImportService(cfg config.Config, logger *logging.Logger) (*usecase.ImportService, *sqlx.DB, error) {
	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	repos := newPostgresRepositories(db)
	svc := usecase.NewImportService(repos.players, repos.tournaments, repos.stats, cfg.DefaultSeasonYear, logger)
	return svc, db, nil
}

func newMemoryRepositories() repositories {
	players := memory.NewPlayerRepository()
	return repositories{
		players:     players,
		tournaments: memory.NewTournamentRepository(),
		stats:       memory.NewStatsRepository(players),
		moderation:  memory.NewModerationRepository(),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		players:     postgres.NewPlayerRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		stats:       postgres.NewStatsRepository(db),
		moderation:  postgres.NewModerationRepository(db),
	}
}
