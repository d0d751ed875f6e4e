package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var req CreateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create location")
	}

	locationType, typeErr := location.ParseType(req.Type)
	parentID, parentErr := optionalBodyID("parentId", req.ParentID)
	if err := errors.Join(typeErr, parentErr); err != nil {
		return s.respondError(ctx, err, "Failed to create location")
	}

	cmd, err := commands.NewCreateLocationCommand(commands.CreateLocationParams{
		TenantID:        tenantID,
		LocationID:      kernel.NewUUID(),
		Zone:            req.Zone,
		Aisle:           req.Aisle,
		Rack:            req.Rack,
		Level:           req.Level,
		Code:            req.Code,
		Name:            req.Name,
		Type:            locationType,
		ParentID:        parentID,
		Description:     req.Description,
		Barcode:         req.Barcode,
		MaximumQuantity: req.MaximumQuantity,
		InitialQuantity: req.InitialQuantity,
	})
	if err != nil {
		return s.respondError(ctx, err, "Failed to create location")
	}

	id, err := s.handlers.CreateLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create location")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: id.Bytes()})
}

// GetLocations handles GET /api/v1/locations?status=Available.
func (s *Server) GetLocations(ctx echo.Context) error {
	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve locations")
	}

	var status *location.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := location.ParseStatus(raw)
		if err != nil {
			return s.respondError(ctx, err, "Failed to retrieve locations")
		}
		status = &parsed
	}

	query, err := queries.NewGetLocationsQuery(tenantID, status)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve locations")
	}

	locations, err := s.handlers.GetLocations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve locations")
	}

	response := make([]Location, len(locations))
	for i, l := range locations {
		response[i] = Location{
			ID:              l.ID.Bytes(),
			Barcode:         l.Barcode,
			Code:            l.Code,
			Name:            l.Name,
			Type:            l.Type,
			Zone:            l.Zone,
			Aisle:           l.Aisle,
			Rack:            l.Rack,
			Level:           l.Level,
			Description:     l.Description,
			Status:          l.Status,
			CurrentQuantity: l.CurrentQuantity,
			MaximumQuantity: l.MaximumQuantity,
			BlockReason:     l.BlockReason,
			UpdatedAt:       l.UpdatedAt,
		}
		if l.ParentID != nil {
			parent := l.ParentID.Bytes()
			response[i].ParentID = &parent
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateLocationStatus handles PATCH /api/v1/locations/:id/status.
func (s *Server) UpdateLocationStatus(ctx echo.Context) error {
	var req UpdateLocationStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, tenantErr := tenantFrom(ctx)
	actor, actorErr := actorFrom(ctx)
	locationID, idErr := pathID(ctx)
	status, statusErr := location.ParseStatus(req.Status)
	if err := errors.Join(tenantErr, actorErr, idErr, statusErr); err != nil {
		return s.respondError(ctx, err, "Failed to update location status")
	}

	cmd, err := commands.NewUpdateLocationStatusCommand(tenantID, locationID, status, req.Reason, actor)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update location status")
	}

	newStatus, err := s.handlers.UpdateLocationStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update location status")
	}

	return ctx.JSON(http.StatusOK, LocationStatusResponse{
		ID:     locationID.Bytes(),
		Status: newStatus.String(),
	})
}

// AssignLocations handles POST /api/v1/locations/fefo-assignments.
func (s *Server) AssignLocations(ctx echo.Context) error {
	var req AssignLocationsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, err := tenantFrom(ctx)
	if err != nil {
		return s.respondError(ctx, err, "Failed to assign locations")
	}

	items := make([]services.StockItemRequest, 0, len(req.StockItems))
	itemErrs := make([]error, 0, len(req.StockItems))
	for _, raw := range req.StockItems {
		stockItemID, err := bodyID("stockItemId", raw.StockItemID)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		item, err := services.NewStockItemRequest(stockItemID, raw.Quantity, raw.ExpirationDate, raw.Classification)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return s.respondError(ctx, err, "Failed to assign locations")
	}

	cmd, err := commands.NewAssignLocationsFEFOCommand(tenantID, items)
	if err != nil {
		return s.respondError(ctx, err, "Failed to assign locations")
	}

	assignments, err := s.handlers.AssignLocationsFEFO.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to assign locations")
	}

	response := AssignLocationsResponse{Assignments: make([]Assignment, 0, assignments.Len())}
	for _, a := range assignments.InOrder() {
		response.Assignments = append(response.Assignments, Assignment{
			StockItemID: a.StockItemID.Bytes(),
			LocationID:  a.LocationID.Bytes(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RouteReturn handles POST /api/v1/returns/routing.
func (s *Server) RouteReturn(ctx echo.Context) error {
	var req RouteReturnRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tenantID, tenantErr := tenantFrom(ctx)
	productID, productErr := bodyID("productId", req.ProductID)
	condition, conditionErr := services.ParseCondition(req.Condition)
	if err := errors.Join(tenantErr, productErr, conditionErr); err != nil {
		return s.respondError(ctx, err, "Failed to route return")
	}

	cmd, err := commands.NewRouteReturnCommand(tenantID, productID, condition, req.Quantity, req.Zone)
	if err != nil {
		return s.respondError(ctx, err, "Failed to route return")
	}

	locationID, err := s.handlers.RouteReturn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to route return")
	}

	return ctx.JSON(http.StatusOK, RouteReturnResponse{LocationID: locationID.Bytes()})
}
