package cmd

import (
	"log/slog"

	"parcelroute/internal/adapters/out/oracle"
	"parcelroute/internal/adapters/out/postgres"
	"parcelroute/internal/adapters/out/postgres/parcelrepo"
	"parcelroute/internal/core/application/usecases/commands"
	"parcelroute/internal/core/application/usecases/queries"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/ports"
	"parcelroute/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, handlers, and jobs together. All handler
// factory methods are cheap; each call produces an independent handler over
// the shared connection pool and oracle client.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory GormUnitOfWorkFactory
	oracle     *oracle.Client
	logger     *slog.Logger
}

// GormUnitOfWorkFactory aliases the postgres factory so callers outside cmd
// never import the adapter package directly.
type GormUnitOfWorkFactory = postgres.GormUnitOfWorkFactory

// NewCompositionRoot builds the object graph from the configuration and an
// open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	oracleClient, err := oracle.NewClient(oracle.Config{
		BaseURL: config.OracleHost,
		Timeout: config.OracleTimeout,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		oracle:     oracleClient,
		logger:     logger,
	}, nil
}

// Oracle exposes the route oracle port for the HTTP server's completion proxy.
func (c *CompositionRoot) Oracle() ports.RouteOracle {
	return c.oracle
}

func (c *CompositionRoot) CreateSyncNextTargetCommandHandler() commands.SyncNextTargetCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncNextTargetCommandHandler(f, c.oracle, c.logger)
}

func (c *CompositionRoot) CreateCompletePickupGroupCommandHandler() commands.CompletePickupGroupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickupGroupCommandHandler(f, c.oracle, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.oracle, c.logger)
}

func (c *CompositionRoot) CreateGetPickupListQueryHandler() queries.GetPickupListQueryHandler {
	return queries.NewGetPickupListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryListQueryHandler() queries.GetDeliveryListQueryHandler {
	return queries.NewGetDeliveryListQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs. The job-owned repository runs
// outside any unit of work; it only performs reads.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	parcels := parcelrepo.NewGormParcelRepository(c.gormDB, noopTracker{})
	return jobs.NewJobManager(
		c.CreateSyncNextTargetCommandHandler(),
		parcels,
		c.oracle,
		c.config.OracleServiceToken,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

// noopTracker satisfies the repository's tracker dependency for read-only use.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}
