package location_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func validParams(t *testing.T, tenant kernel.TenantID, current, maximum int64) location.Params {
	t.Helper()
	coords := mustCoordinates(t, "A", "1", "2", "3")
	barcode, err := location.GenerateBarcode(coords, "")
	require.NoError(t, err)

	return location.Params{
		ID:          kernel.NewUUID(),
		TenantID:    tenant,
		Coordinates: &coords,
		Barcode:     barcode,
		Capacity:    mustCapacity(t, current, maximum),
	}
}

func createLocation(t *testing.T, current, maximum int64) *location.Location {
	t.Helper()
	l, _, err := location.NewLocation(validParams(t, kernel.NewTenantID(), current, maximum), now)
	require.NoError(t, err)
	return l
}

func TestNewLocation(t *testing.T) {
	tenant := kernel.NewTenantID()

	t.Run("empty location starts Available and raises LocationCreated", func(t *testing.T) {
		p := validParams(t, tenant, 0, 10)

		l, ev, err := location.NewLocation(p, now)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, location.Available, l.Status())
		assert.Equal(t, location.Bin, l.Type())
		assert.True(t, l.BelongsTo(tenant))
		assert.Equal(t, now, l.CreatedAt())
		assert.Equal(t, int64(0), l.Version())

		assert.Equal(t, "location.created", ev.EventType())
		assert.Equal(t, location.AggregateType, ev.AggregateType())
		assert.True(t, ev.TenantID.IsEqual(tenant))
		assert.True(t, ev.AggregateID.IsEqual(p.ID))
		assert.Equal(t, "A0102030", ev.Barcode)
		assert.Equal(t, "A-1-2-3", ev.Coordinates)
		assert.Equal(t, "Available", ev.Status)
	})

	t.Run("pre-populated location starts Occupied", func(t *testing.T) {
		l, ev, err := location.NewLocation(validParams(t, tenant, 4, 10), now)

		require.NoError(t, err)
		assert.Equal(t, location.Occupied, l.Status())
		assert.Equal(t, "Occupied", ev.Status)
	})

	t.Run("hierarchy-only location keeps its type and code", func(t *testing.T) {
		barcode, err := location.GenerateBarcodeFromCode("wh-1", "")
		require.NoError(t, err)
		parent := kernel.NewUUID()

		l, _, err := location.NewLocation(location.Params{
			ID:       kernel.NewUUID(),
			TenantID: tenant,
			Barcode:  barcode,
			Capacity: mustCapacity(t, 0, 1000),
			Code:     " wh-1 ",
			Name:     "Main warehouse",
			Type:     location.Zone,
			ParentID: &parent,
		}, now)

		require.NoError(t, err)
		_, ok := l.Coordinates()
		assert.False(t, ok)
		assert.Equal(t, "WH-1", l.Code())
		assert.Equal(t, location.Zone, l.Type())
		assert.True(t, l.ParentID().IsEqual(parent))
	})

	t.Run("requires coordinates or code", func(t *testing.T) {
		p := validParams(t, tenant, 0, 10)
		p.Coordinates = nil

		_, _, err := location.NewLocation(p, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "coordinates or code")
	})

	t.Run("rejects a location that is its own parent", func(t *testing.T) {
		p := validParams(t, tenant, 0, 10)
		p.ParentID = &p.ID

		_, _, err := location.NewLocation(p, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("aggregates construction errors", func(t *testing.T) {
		_, _, err := location.NewLocation(location.Params{Coordinates: &location.Coordinates{}}, now)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrTenantIDIsNotConstructed)
		require.ErrorIs(t, err, location.ErrCoordinatesAreNotConstructed)
		require.ErrorIs(t, err, location.ErrBarcodeIsNotConstructed)
		require.ErrorIs(t, err, location.ErrCapacityIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var l *location.Location

		assert.Equal(t, location.ErrLocationIsNotConstructed, l.Validate())
		assert.Equal(t, location.ErrLocationIsNotConstructed, (&location.Location{}).Validate())
	})
}

func TestRestoreLocation(t *testing.T) {
	by := kernel.NewUUID()
	blockedAt := now.Add(time.Hour)
	p := validParams(t, kernel.NewTenantID(), 2, 10)

	l, err := location.RestoreLocation(location.RestoreParams{
		Params:      p,
		Status:      location.Blocked,
		BlockedBy:   &by,
		BlockReason: "inspection",
		BlockedAt:   &blockedAt,
		CreatedAt:   now,
		UpdatedAt:   blockedAt,
		Version:     7,
	})

	require.NoError(t, err)
	assert.Equal(t, location.Blocked, l.Status())
	assert.Equal(t, "inspection", l.BlockReason())
	assert.True(t, l.BlockedBy().IsEqual(by))
	assert.Equal(t, int64(7), l.Version())

	_, err = location.RestoreLocation(location.RestoreParams{Params: p})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLocation_BlockUnblock(t *testing.T) {
	actor := kernel.NewUUID()

	t.Run("block then unblock restores the quantity-derived status", func(t *testing.T) {
		for _, tc := range []struct {
			current  int64
			expected location.Status
		}{
			{0, location.Available},
			{3, location.Occupied},
		} {
			l := createLocation(t, tc.current, 10)
			before := l.Status()

			blocked, err := l.Block(actor, "cycle count", now)
			require.NoError(t, err)
			assert.Equal(t, location.Blocked, l.Status())
			assert.Equal(t, before.String(), blocked.PreviousStatus)
			assert.Equal(t, "cycle count", blocked.Reason)
			assert.Equal(t, "location.blocked", blocked.EventType())

			unblocked, err := l.Unblock(actor, now.Add(time.Minute))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, l.Status())
			assert.Equal(t, before, l.Status())
			assert.Equal(t, tc.expected.String(), unblocked.Status)
			assert.Nil(t, l.BlockedBy())
			assert.Nil(t, l.BlockedAt())
			assert.Empty(t, l.BlockReason())
		}
	})

	t.Run("blocking twice fails and leaves the location unchanged", func(t *testing.T) {
		l := createLocation(t, 0, 10)
		_, err := l.Block(actor, "damaged rack", now)
		require.NoError(t, err)

		_, err = l.Block(kernel.NewUUID(), "other", now.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
		assert.Equal(t, "damaged rack", l.BlockReason())
		assert.True(t, l.BlockedBy().IsEqual(actor))
		assert.Equal(t, now, *l.BlockedAt())
	})

	t.Run("reason is required", func(t *testing.T) {
		l := createLocation(t, 0, 10)

		_, err := l.Block(actor, "  ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, location.Available, l.Status())
	})

	t.Run("unblock requires Blocked", func(t *testing.T) {
		l := createLocation(t, 0, 10)

		_, err := l.Unblock(actor, now)

		require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
	})
}

func TestLocation_HasCapacity(t *testing.T) {
	t.Run("blocked never has capacity", func(t *testing.T) {
		l := createLocation(t, 0, 100)
		_, err := l.Block(kernel.NewUUID(), "audit", now)
		require.NoError(t, err)

		assert.False(t, l.HasCapacity(dec(1)))
		assert.False(t, l.HasCapacity(dec(0)))
	})

	t.Run("available and reserved check headroom", func(t *testing.T) {
		l := createLocation(t, 0, 5)
		assert.True(t, l.HasCapacity(dec(5)))
		assert.False(t, l.HasCapacity(dec(6)))

		_, err := l.Reserve(now)
		require.NoError(t, err)
		assert.True(t, l.HasCapacity(dec(5)))
		assert.False(t, l.IsAvailable())
	})

	t.Run("occupied has no capacity", func(t *testing.T) {
		l := createLocation(t, 1, 5)

		assert.False(t, l.HasCapacity(dec(1)))
	})

	t.Run("full location has no capacity", func(t *testing.T) {
		l, err := location.RestoreLocation(location.RestoreParams{
			Params: validParams(t, kernel.NewTenantID(), 5, 5),
			Status: location.Available,
		})
		require.NoError(t, err)

		assert.False(t, l.HasCapacity(dec(1)))
	})
}

func TestLocation_Reservation(t *testing.T) {
	l := createLocation(t, 0, 10)

	reserved, err := l.Reserve(now)
	require.NoError(t, err)
	assert.Equal(t, location.Reserved, l.Status())
	assert.Equal(t, "location.reserved", reserved.EventType())

	_, err = l.Reserve(now)
	require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)

	released, err := l.ReleaseReservation(now)
	require.NoError(t, err)
	assert.Equal(t, location.Available, l.Status())
	assert.Equal(t, "Available", released.Status)

	_, err = l.ReleaseReservation(now)
	require.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
}

func TestLocation_Stock(t *testing.T) {
	t.Run("adding stock occupies, removing all frees", func(t *testing.T) {
		l := createLocation(t, 0, 10)

		require.NoError(t, l.AddStock(dec(4), now))
		assert.Equal(t, location.Occupied, l.Status())
		assert.True(t, l.Capacity().Current().Equal(dec(4)))

		require.NoError(t, l.AddStock(dec(6), now))
		assert.True(t, l.Capacity().Available().IsZero())

		require.NoError(t, l.RemoveStock(dec(9), now))
		assert.Equal(t, location.Occupied, l.Status())

		require.NoError(t, l.RemoveStock(dec(1), now))
		assert.Equal(t, location.Available, l.Status())
		assert.True(t, l.Capacity().IsEmpty())
	})

	t.Run("stock arriving at a reserved location occupies it", func(t *testing.T) {
		l := createLocation(t, 0, 10)
		_, err := l.Reserve(now)
		require.NoError(t, err)

		require.NoError(t, l.AddStock(dec(2), now))

		assert.Equal(t, location.Occupied, l.Status())
	})

	t.Run("overflow fails and nothing changes", func(t *testing.T) {
		l := createLocation(t, 8, 10)

		err := l.AddStock(dec(3), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, l.Capacity().Current().Equal(dec(8)))
		assert.Equal(t, location.Occupied, l.Status())
	})

	t.Run("underflow fails", func(t *testing.T) {
		l := createLocation(t, 2, 10)

		require.ErrorIs(t, l.RemoveStock(dec(3), now), errs.ErrValueIsOutOfRange)
	})

	t.Run("blocked location accepts no stock movements", func(t *testing.T) {
		l := createLocation(t, 2, 10)
		_, err := l.Block(kernel.NewUUID(), "audit", now)
		require.NoError(t, err)

		require.ErrorIs(t, l.AddStock(dec(1), now), errs.ErrStatusTransitionIsInvalid)
		require.ErrorIs(t, l.RemoveStock(dec(1), now), errs.ErrStatusTransitionIsInvalid)
		assert.True(t, l.Capacity().Current().Equal(dec(2)))
	})
}
