package cmd

import (
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/logger"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *logger.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	log *logger.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     log,
	}
}

func (c *CompositionRoot) locationUoWFactory() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLocationStatusCommandHandler() commands.UpdateLocationStatusCommandHandler {
	return commands.NewUpdateLocationStatusCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateAssignLocationsFEFOCommandHandler() commands.AssignLocationsFEFOCommandHandler {
	return commands.NewAssignLocationsFEFOCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateRouteReturnCommandHandler() commands.RouteReturnCommandHandler {
	return commands.NewRouteReturnCommandHandler(c.locationUoWFactory())
}

func (c *CompositionRoot) CreateCreateStockMovementCommandHandler() commands.CreateStockMovementCommandHandler {
	return commands.NewCreateStockMovementCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCompleteStockMovementCommandHandler() commands.CompleteStockMovementCommandHandler {
	return commands.NewCompleteStockMovementCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCancelStockMovementCommandHandler() commands.CancelStockMovementCommandHandler {
	return commands.NewCancelStockMovementCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetLocationsQueryHandler() queries.GetLocationsQueryHandler {
	return queries.NewGetLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateLocation:        c.CreateCreateLocationCommandHandler(),
		UpdateLocationStatus:  c.CreateUpdateLocationStatusCommandHandler(),
		AssignLocationsFEFO:   c.CreateAssignLocationsFEFOCommandHandler(),
		RouteReturn:           c.CreateRouteReturnCommandHandler(),
		CreateStockMovement:   c.CreateCreateStockMovementCommandHandler(),
		CompleteStockMovement: c.CreateCompleteStockMovementCommandHandler(),
		CancelStockMovement:   c.CreateCancelStockMovementCommandHandler(),
		GetLocations:          c.CreateGetLocationsQueryHandler(),
		GetStockMovements:     c.CreateGetStockMovementsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayJob, err := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxRelaySchedule,
		c.config.OutboxBatchSize,
		c.logger,
	)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(relayJob), nil
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
