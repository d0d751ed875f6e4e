package movement

import "warehouse/internal/core/domain/model/kernel"

const AggregateType = "stock_movement"

type StockMovementCreated struct {
	kernel.EventMeta
	StockItemID           *kernel.UUID `json:"stockItemId,omitempty"`
	ProductID             kernel.UUID  `json:"productId"`
	SourceLocationID      kernel.UUID  `json:"sourceLocationId"`
	DestinationLocationID kernel.UUID  `json:"destinationLocationId"`
	Quantity              int          `json:"quantity"`
	MovementType          string       `json:"movementType"`
	Reason                string       `json:"reason"`
	InitiatedBy           kernel.UUID  `json:"initiatedBy"`
}

func (StockMovementCreated) EventType() string     { return "stock_movement.created" }
func (StockMovementCreated) AggregateType() string { return AggregateType }

type StockMovementCompleted struct {
	kernel.EventMeta
	ProductID             kernel.UUID `json:"productId"`
	SourceLocationID      kernel.UUID `json:"sourceLocationId"`
	DestinationLocationID kernel.UUID `json:"destinationLocationId"`
	Quantity              int         `json:"quantity"`
	CompletedBy           kernel.UUID `json:"completedBy"`
}

func (StockMovementCompleted) EventType() string     { return "stock_movement.completed" }
func (StockMovementCompleted) AggregateType() string { return AggregateType }

type StockMovementCancelled struct {
	kernel.EventMeta
	CancelledBy        kernel.UUID `json:"cancelledBy"`
	CancellationReason string      `json:"cancellationReason"`
}

func (StockMovementCancelled) EventType() string     { return "stock_movement.cancelled" }
func (StockMovementCancelled) AggregateType() string { return AggregateType }
