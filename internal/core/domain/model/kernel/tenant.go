package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// ErrTenantIDIsNotConstructed is returned when a TenantID is the zero value.
var ErrTenantIDIsNotConstructed = errs.NewValueIsRequiredError("tenantID")

// TenantID identifies the tenant (customer organization) that owns an aggregate.
// It is a distinct type from UUID so that a tenant can never be passed where an
// entity identifier is expected, and vice versa.
type TenantID struct {
	id UUID
}

// NewTenantID returns a random tenant identifier. Production tenants are
// provisioned elsewhere; this is mainly useful in tests.
func NewTenantID() TenantID {
	return TenantID{id: NewUUID()}
}

// TenantIDFromUUID wraps an existing UUID.
func TenantIDFromUUID(id UUID) (TenantID, error) {
	if err := id.Validate(); err != nil {
		return TenantID{}, ErrTenantIDIsNotConstructed
	}
	return TenantID{id: id}, nil
}

// TenantIDFromString parses a tenant identifier, typically from the
// X-Tenant-ID request header.
func TenantIDFromString(s string) (TenantID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return TenantID{}, errs.NewValueIsInvalidErrorWithCause("tenantID", fmt.Errorf("%q: %w", s, err))
	}
	return TenantIDFromUUID(id)
}

func (t TenantID) UUID() UUID {
	return t.id
}

func (t TenantID) String() string {
	return t.id.String()
}

func (t TenantID) MarshalText() ([]byte, error) {
	return t.id.MarshalText()
}

func (t TenantID) IsEqual(other TenantID) bool {
	return t.id.IsEqual(other.id)
}

// Validate returns ErrTenantIDIsNotConstructed for the zero value.
func (t TenantID) Validate() error {
	if t.id.Validate() != nil {
		return ErrTenantIDIsNotConstructed
	}
	return nil
}
