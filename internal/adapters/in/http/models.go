package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateLocationRequest struct {
	Zone  string `json:"zone"`
	Aisle string `json:"aisle"`
	Rack  string `json:"rack"`
	Level string `json:"level"`

	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	ParentID    *uuid.UUID `json:"parentId"`
	Description string     `json:"description"`
	Barcode     string     `json:"barcode"`

	MaximumQuantity decimal.Decimal `json:"maximumQuantity"`
	InitialQuantity decimal.Decimal `json:"initialQuantity"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type Location struct {
	ID              uuid.UUID       `json:"id"`
	Barcode         string          `json:"barcode"`
	Code            string          `json:"code,omitempty"`
	Name            string          `json:"name,omitempty"`
	Type            string          `json:"type"`
	Zone            string          `json:"zone,omitempty"`
	Aisle           string          `json:"aisle,omitempty"`
	Rack            string          `json:"rack,omitempty"`
	Level           string          `json:"level,omitempty"`
	ParentID        *uuid.UUID      `json:"parentId,omitempty"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
	CurrentQuantity decimal.Decimal `json:"currentQuantity"`
	MaximumQuantity decimal.Decimal `json:"maximumQuantity"`
	BlockReason     string          `json:"blockReason,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type UpdateLocationStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type LocationStatusResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type StockItem struct {
	StockItemID    uuid.UUID       `json:"stockItemId"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate *time.Time      `json:"expirationDate"`
	Classification string          `json:"classification"`
}

type AssignLocationsRequest struct {
	StockItems []StockItem `json:"stockItems"`
}

type Assignment struct {
	StockItemID uuid.UUID `json:"stockItemId"`
	LocationID  uuid.UUID `json:"locationId"`
}

type AssignLocationsResponse struct {
	Assignments []Assignment `json:"assignments"`
}

type RouteReturnRequest struct {
	ProductID uuid.UUID       `json:"productId"`
	Condition string          `json:"condition"`
	Quantity  decimal.Decimal `json:"quantity"`
	Zone      string          `json:"zone"`
}

type RouteReturnResponse struct {
	LocationID uuid.UUID `json:"locationId"`
}

type CreateStockMovementRequest struct {
	StockItemID           *uuid.UUID `json:"stockItemId"`
	ProductID             uuid.UUID  `json:"productId"`
	SourceLocationID      uuid.UUID  `json:"sourceLocationId"`
	DestinationLocationID uuid.UUID  `json:"destinationLocationId"`
	Quantity              int        `json:"quantity"`
	Type                  string     `json:"type"`
	Reason                string     `json:"reason"`
}

type CancelStockMovementRequest struct {
	Reason string `json:"reason"`
}

type StockMovement struct {
	ID                    uuid.UUID  `json:"id"`
	ProductID             uuid.UUID  `json:"productId"`
	SourceLocationID      uuid.UUID  `json:"sourceLocationId"`
	DestinationLocationID uuid.UUID  `json:"destinationLocationId"`
	Quantity              int        `json:"quantity"`
	Type                  string     `json:"type"`
	Reason                string     `json:"reason"`
	Status                string     `json:"status"`
	InitiatedBy           uuid.UUID  `json:"initiatedBy"`
	InitiatedAt           time.Time  `json:"initiatedAt"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	CancelledAt           *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason    string     `json:"cancellationReason,omitempty"`
}
