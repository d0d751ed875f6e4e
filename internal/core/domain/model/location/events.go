package location

import (
	"warehouse/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const AggregateType = "location"

type LocationCreated struct {
	kernel.EventMeta
	Barcode         string          `json:"barcode"`
	Code            string          `json:"code,omitempty"`
	Coordinates     string          `json:"coordinates,omitempty"`
	Type            string          `json:"type,omitempty"`
	Status          string          `json:"status"`
	CurrentQuantity decimal.Decimal `json:"currentQuantity"`
	MaximumQuantity decimal.Decimal `json:"maximumQuantity"`
}

func (LocationCreated) EventType() string     { return "location.created" }
func (LocationCreated) AggregateType() string { return AggregateType }

type LocationBlocked struct {
	kernel.EventMeta
	BlockedBy      kernel.UUID `json:"blockedBy"`
	Reason         string      `json:"reason"`
	PreviousStatus string      `json:"previousStatus"`
}

func (LocationBlocked) EventType() string     { return "location.blocked" }
func (LocationBlocked) AggregateType() string { return AggregateType }

// LocationUnblocked carries the status the location resolved to.
type LocationUnblocked struct {
	kernel.EventMeta
	UnblockedBy kernel.UUID `json:"unblockedBy"`
	Status      string      `json:"status"`
}

func (LocationUnblocked) EventType() string     { return "location.unblocked" }
func (LocationUnblocked) AggregateType() string { return AggregateType }

type LocationReserved struct {
	kernel.EventMeta
}

func (LocationReserved) EventType() string     { return "location.reserved" }
func (LocationReserved) AggregateType() string { return AggregateType }

type LocationReservationReleased struct {
	kernel.EventMeta
	Status string `json:"status"`
}

func (LocationReservationReleased) EventType() string     { return "location.reservation_released" }
func (LocationReservationReleased) AggregateType() string { return AggregateType }
