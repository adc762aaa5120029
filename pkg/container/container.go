package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/pkg/metrics"

	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"

	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"

	maintenanceHandler "bookstore-catalog/internal/domains/maintenance/handler"
	maintenanceRepo "bookstore-catalog/internal/domains/maintenance/repository"
	maintenanceService "bookstore-catalog/internal/domains/maintenance/service"
)

const poolMonitorInterval = 30 * time.Second

// Container holds every application dependency.
//
// Initialization order:
//  1. Config
//  2. Database pool
//  3. Repositories
//  4. Services
//  5. Handlers
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	// Repositories
	AuthorRepo      authorRepo.RepositoryInterface
	BookRepo        bookRepo.RepositoryInterface
	MaintenanceRepo maintenanceRepo.RepositoryInterface

	// Services
	AuthorService      authorService.ServiceInterface
	BookService        bookService.ServiceInterface
	MaintenanceService maintenanceService.ServiceInterface

	// Handlers
	AuthorHandler      *authorHandler.AuthorHandler
	BookHandler        *bookHandler.Handler
	MaintenanceHandler *maintenanceHandler.Handler

	stopMonitor context.CancelFunc
}

// NewContainer loads config from the environment, connects to PostgreSQL
// and builds the dependency graph on top of the pool.
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing container")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("environment", cfg.App.Environment).Bool("production", cfg.IsProduction()).Msg("Config loaded")

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if err := metrics.RegisterPool(poolStats(db)); err != nil {
		log.Warn().Err(err).Msg("Pool metrics not registered")
	}

	c := New(cfg, db.Pool)
	c.DB = db

	monitorCtx, stop := context.WithCancel(context.Background())
	c.stopMonitor = stop
	go db.MonitorPoolHealth(monitorCtx, poolMonitorInterval)

	log.Info().Msg("Container initialized")
	return c, nil
}

// New wires repositories, services and handlers over an already opened pool.
// DB is left nil; callers that own a PostgresDB set it themselves.
func New(cfg *config.Config, pool database.Pool) *Container {
	c := &Container{Config: cfg}

	c.initRepositories(pool)
	c.initServices(pool)
	c.initHandlers()

	return c
}

func (c *Container) initRepositories(db database.DBTX) {
	c.AuthorRepo = authorRepo.NewPostgresRepository(db)
	c.BookRepo = bookRepo.NewPostgresRepository(db)
	c.MaintenanceRepo = maintenanceRepo.NewPostgresRepository(db)
}

func (c *Container) initServices(pool database.TxBeginner) {
	c.AuthorService = authorService.NewAuthorService(pool, c.AuthorRepo)
	c.BookService = bookService.NewBookService(pool, c.BookRepo)
	c.MaintenanceService = maintenanceService.NewMaintenanceService(pool, c.MaintenanceRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.MaintenanceHandler = maintenanceHandler.NewHandler(c.MaintenanceService)
}

// Cleanup stops background work and closes the pool. Called on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.stopMonitor != nil {
		c.stopMonitor()
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	log.Info().Msg("Container cleanup completed")
}

func poolStats(db *database.PostgresDB) metrics.PoolStatsFunc {
	return func() (metrics.PoolSnapshot, bool) {
		s, err := db.Stats()
		if err != nil {
			return metrics.PoolSnapshot{}, false
		}
		return metrics.PoolSnapshot{
			AcquiredConns: s.AcquiredConns,
			IdleConns:     s.IdleConns,
			TotalConns:    s.TotalConns,
			MaxConns:      s.MaxConns,
			AcquireCount:  s.AcquireCount,
		}, true
	}
}
