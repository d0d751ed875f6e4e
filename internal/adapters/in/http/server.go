package http

import (
	"context"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	CreateLocationHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLocationCommand) (kernel.UUID, error)
	}
	UpdateLocationStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateLocationStatusCommand) (location.Status, error)
	}
	AssignLocationsFEFOHandler interface {
		Handle(ctx context.Context, cmd commands.AssignLocationsFEFOCommand) (services.Assignments, error)
	}
	RouteReturnHandler interface {
		Handle(ctx context.Context, cmd commands.RouteReturnCommand) (kernel.UUID, error)
	}
	CreateStockMovementHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStockMovementCommand) (kernel.UUID, error)
	}
	CompleteStockMovementHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteStockMovementCommand) error
	}
	CancelStockMovementHandler interface {
		Handle(ctx context.Context, cmd commands.CancelStockMovementCommand) error
	}
	GetLocationsHandler interface {
		Handle(ctx context.Context, query queries.GetLocationsQuery) ([]queries.GetLocationsQueryResponse, error)
	}
	GetStockMovementsHandler interface {
		Handle(ctx context.Context, query queries.GetStockMovementsQuery) ([]queries.GetStockMovementsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateLocation        CreateLocationHandler
	UpdateLocationStatus  UpdateLocationStatusHandler
	AssignLocationsFEFO   AssignLocationsFEFOHandler
	RouteReturn           RouteReturnHandler
	CreateStockMovement   CreateStockMovementHandler
	CompleteStockMovement CompleteStockMovementHandler
	CancelStockMovement   CancelStockMovementHandler

	// Query handlers
	GetLocations      GetLocationsHandler
	GetStockMovements GetStockMovementsHandler
}

// Server translates HTTP requests into commands and queries. The tenant is
// taken from the X-Tenant-ID header on every /api route and the acting user
// from X-User-ID on every state change that records one.
type Server struct {
	handlers Handlers
	log      *logger.Logger
}

func NewServer(handlers Handlers, log *logger.Logger) *Server {
	return &Server{
		handlers: handlers,
		log:      log.WithComponent("http"),
	}
}

// RegisterRoutes mounts the API on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/locations", s.CreateLocation)
	api.GET("/locations", s.GetLocations)
	api.PATCH("/locations/:id/status", s.UpdateLocationStatus)
	api.POST("/locations/fefo-assignments", s.AssignLocations)

	api.POST("/returns/routing", s.RouteReturn)

	api.POST("/stock-movements", s.CreateStockMovement)
	api.GET("/stock-movements", s.GetStockMovements)
	api.POST("/stock-movements/:id/complete", s.CompleteStockMovement)
	api.POST("/stock-movements/:id/cancel", s.CancelStockMovement)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// bodyID converts an identifier taken from a request body. An absent value
// decodes as the nil UUID and is reported as required.
func bodyID(name string, raw uuid.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromGoogle(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return id, nil
}

func optionalBodyID(name string, raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := bodyID(name, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
