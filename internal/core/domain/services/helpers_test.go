package services_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func date(s string) *time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &d
}

// slot builds a coordinate-addressed Bin in the given zone and status.
func slot(t *testing.T, tenant kernel.TenantID, zone string, status location.Status, current, maximum int64) *location.Location {
	t.Helper()
	id := kernel.NewUUID()
	coords, err := location.NewCoordinates(zone, "1", "1", "1")
	require.NoError(t, err)
	barcode, err := location.GenerateBarcode(coords, id.String())
	require.NoError(t, err)
	capacity, err := location.NewCapacity(dec(current), dec(maximum))
	require.NoError(t, err)

	l, err := location.RestoreLocation(location.RestoreParams{
		Params: location.Params{
			ID:          id,
			TenantID:    tenant,
			Coordinates: &coords,
			Barcode:     barcode,
			Capacity:    capacity,
		},
		Status: status,
	})
	require.NoError(t, err)
	return l
}

// area builds a hierarchy-only location of the given type without coordinates.
func area(t *testing.T, tenant kernel.TenantID, code string, typ location.Type, maximum int64) *location.Location {
	t.Helper()
	barcode, err := location.GenerateBarcodeFromCode(code, "")
	require.NoError(t, err)
	capacity, err := location.NewCapacity(decimal.Zero, dec(maximum))
	require.NoError(t, err)

	l, _, err := location.NewLocation(location.Params{
		ID:       kernel.NewUUID(),
		TenantID: tenant,
		Barcode:  barcode,
		Capacity: capacity,
		Code:     code,
		Type:     typ,
	}, time.Now())
	require.NoError(t, err)
	return l
}

func item(t *testing.T, quantity int64, expiration *time.Time) services.StockItemRequest {
	t.Helper()
	r, err := services.NewStockItemRequest(kernel.NewUUID(), dec(quantity), expiration, "")
	require.NoError(t, err)
	return r
}
