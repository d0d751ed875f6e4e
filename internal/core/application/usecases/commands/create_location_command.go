package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationParams carries the raw request values for a new location.
// A location is addressed either by all four coordinate components or by a
// hierarchy code; both may be given.
type CreateLocationParams struct {
	TenantID   kernel.TenantID
	LocationID kernel.UUID

	Zone  string
	Aisle string
	Rack  string
	Level string

	Code        string
	Name        string
	Type        location.Type
	ParentID    *kernel.UUID
	Description string

	// Barcode is optional; when empty one is generated.
	Barcode string

	MaximumQuantity decimal.Decimal
	InitialQuantity decimal.Decimal
}

// CreateLocationCommand registers a new storage location for a tenant.
//
// Example:
//
//	cmd, err := NewCreateLocationCommand(CreateLocationParams{
//	    TenantID:        tenantID,
//	    LocationID:      kernel.NewUUID(),
//	    Zone:            "A", Aisle: "1", Rack: "2", Level: "3",
//	    MaximumQuantity: decimal.NewFromInt(100),
//	})
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	tenantID    kernel.TenantID
	locationID  kernel.UUID
	coordinates *location.Coordinates
	code        string
	name        string
	locType     location.Type
	parentID    *kernel.UUID
	description string
	barcode     *location.Barcode
	capacity    location.Capacity

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand validates p. Every failing field is reported.
func NewCreateLocationCommand(p CreateLocationParams) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		name:        strings.TrimSpace(p.Name),
		parentID:    p.ParentID,
		description: strings.TrimSpace(p.Description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(p.TenantID),
		cmd.setLocationID(p.LocationID),
		cmd.setAddress(p.Zone, p.Aisle, p.Rack, p.Level, p.Code),
		cmd.setType(p.Type),
		cmd.setBarcode(p.Barcode),
		cmd.setCapacity(p.InitialQuantity, p.MaximumQuantity),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) TenantID() kernel.TenantID { return c.tenantID }

func (c CreateLocationCommand) LocationID() kernel.UUID { return c.locationID }

// Coordinates returns the physical address, if one was given.
func (c CreateLocationCommand) Coordinates() *location.Coordinates { return c.coordinates }

// Code returns the normalized hierarchy code, or "".
func (c CreateLocationCommand) Code() string { return c.code }

func (c CreateLocationCommand) Name() string { return c.name }

func (c CreateLocationCommand) Type() location.Type { return c.locType }

func (c CreateLocationCommand) ParentID() *kernel.UUID { return c.parentID }

func (c CreateLocationCommand) Description() string { return c.description }

// Barcode returns the caller-supplied barcode, or nil when it must be generated.
func (c CreateLocationCommand) Barcode() *location.Barcode { return c.barcode }

func (c CreateLocationCommand) Capacity() location.Capacity { return c.capacity }

func (c *CreateLocationCommand) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *CreateLocationCommand) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.locationID = id
	return nil
}

func (c *CreateLocationCommand) setAddress(zone, aisle, rack, level, code string) error {
	c.code = strings.ToUpper(strings.TrimSpace(code))

	if zone == "" && aisle == "" && rack == "" && level == "" {
		if c.code == "" {
			return errs.NewValueIsRequiredError("coordinates or code")
		}
		return nil
	}

	coordinates, err := location.NewCoordinates(zone, aisle, rack, level)
	if err != nil {
		return err
	}
	c.coordinates = &coordinates
	return nil
}

func (c *CreateLocationCommand) setType(t location.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.locType = t
	return nil
}

func (c *CreateLocationCommand) setBarcode(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	barcode, err := location.NewBarcode(raw)
	if err != nil {
		return err
	}
	c.barcode = &barcode
	return nil
}

func (c *CreateLocationCommand) setCapacity(current, maximum decimal.Decimal) error {
	capacity, err := location.NewCapacity(current, maximum)
	if err != nil {
		return err
	}
	c.capacity = capacity
	return nil
}
