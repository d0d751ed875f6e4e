package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"

	"github.com/labstack/echo/v4"
)

// CreateStockMovement handles POST /api/v1/stock-movements.
func (s *Server) CreateStockMovement(ctx echo.Context) error {
	var req CreateStockMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, tenantErr := tenantFrom(ctx)
	actor, actorErr := actorFrom(ctx)
	stockItemID, stockItemErr := optionalBodyID("stockItemId", req.StockItemID)
	productID, productErr := bodyID("productId", req.ProductID)
	sourceID, sourceErr := bodyID("sourceLocationId", req.SourceLocationID)
	destinationID, destinationErr := bodyID("destinationLocationId", req.DestinationLocationID)
	movementType, typeErr := movement.ParseType(req.Type)
	reason, reasonErr := movement.ParseReason(req.Reason)
	if err := errors.Join(
		tenantErr, actorErr, stockItemErr, productErr,
		sourceErr, destinationErr, typeErr, reasonErr,
	); err != nil {
		return s.respondError(ctx, err, "Failed to create stock movement")
	}

	cmd, err := commands.NewCreateStockMovementCommand(commands.CreateStockMovementParams{
		TenantID:              tenantID,
		MovementID:            kernel.NewUUID(),
		StockItemID:           stockItemID,
		ProductID:             productID,
		SourceLocationID:      sourceID,
		DestinationLocationID: destinationID,
		Quantity:              req.Quantity,
		Type:                  movementType,
		Reason:                reason,
		InitiatedBy:           actor,
	})
	if err != nil {
		return s.respondError(ctx, err, "Failed to create stock movement")
	}

	id, err := s.handlers.CreateStockMovement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create stock movement")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.Bytes()})
}

// GetStockMovements handles GET /api/v1/stock-movements?status=Pending.
func (s *Server) GetStockMovements(ctx echo.Context) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve stock movements")
	}

	var status *movement.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := movement.ParseStatus(raw)
		if err != nil {
			return s.respondError(ctx, err, "Failed to retrieve stock movements")
		}
		status = &parsed
	}

	query, err := queries.NewGetStockMovementsQuery(tenantID, status)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve stock movements")
	}

	movements, err := s.handlers.GetStockMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve stock movements")
	}

	response := make([]StockMovement, len(movements))
	for i, m := range movements {
		response[i] = StockMovement{
			ID:                    m.ID.Bytes(),
			ProductID:             m.ProductID.Bytes(),
			SourceLocationID:      m.SourceLocationID.Bytes(),
			DestinationLocationID: m.DestinationLocationID.Bytes(),
			Quantity:              m.Quantity,
			Type:                  m.Type,
			Reason:                m.Reason,
			Status:                m.Status,
			InitiatedBy:           m.InitiatedBy.Bytes(),
			InitiatedAt:           m.InitiatedAt,
			CompletedAt:           m.CompletedAt,
			CancelledAt:           m.CancelledAt,
			CancellationReason:    m.CancellationReason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteStockMovement handles POST /api/v1/stock-movements/:id/complete.
func (s *Server) CompleteStockMovement(ctx echo.Context) error {
	tenantID, tenantErr := tenantFrom(ctx)
	actor, actorErr := actorFrom(ctx)
	movementID, idErr := pathID(ctx)
	if err := errors.Join(tenantErr, actorErr, idErr); err != nil {
		return s.respondError(ctx, err, "Failed to complete stock movement")
	}

	cmd, err := commands.NewCompleteStockMovementCommand(tenantID, movementID, actor)
	if err != nil {
		return s.respondError(ctx, err, "Failed to complete stock movement")
	}

	if err := s.handlers.CompleteStockMovement.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to complete stock movement")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelStockMovement handles POST /api/v1/stock-movements/:id/cancel.
func (s *Server) CancelStockMovement(ctx echo.Context) error {
	var req CancelStockMovementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, tenantErr := tenantFrom(ctx)
	actor, actorErr := actorFrom(ctx)
	movementID, idErr := pathID(ctx)
	if err := errors.Join(tenantErr, actorErr, idErr); err != nil {
		return s.respondError(ctx, err, "Failed to cancel stock movement")
	}

	cmd, err := commands.NewCancelStockMovementCommand(tenantID, movementID, req.Reason, actor)
	if err != nil {
		return s.respondError(ctx, err, "Failed to cancel stock movement")
	}

	if err := s.handlers.CancelStockMovement.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err, "Failed to cancel stock movement")
	}

	return ctx.NoContent(http.StatusNoContent)
}
