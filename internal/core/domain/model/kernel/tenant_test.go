package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantIDFromString(t *testing.T) {
	t.Run("should parse a valid identifier", func(t *testing.T) {
		tenant, err := kernel.TenantIDFromString(validUUID)

		require.NoError(t, err)
		require.NoError(t, tenant.Validate())
		assert.Equal(t, validUUID, tenant.String())
		assert.Equal(t, validUUID, tenant.UUID().String())
	})

	t.Run("should reject malformed input as invalid", func(t *testing.T) {
		_, err := kernel.TenantIDFromString("acme")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the nil UUID as missing", func(t *testing.T) {
		_, err := kernel.TenantIDFromString("00000000-0000-0000-0000-000000000000")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTenantID_IsEqual(t *testing.T) {
	a, err := kernel.TenantIDFromString(validUUID)
	require.NoError(t, err)
	b, err := kernel.TenantIDFromUUID(a.UUID())
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewTenantID()))
}

func TestTenantID_ZeroValue(t *testing.T) {
	var tenant kernel.TenantID

	assert.Equal(t, kernel.ErrTenantIDIsNotConstructed, tenant.Validate())

	_, err := kernel.TenantIDFromUUID(kernel.UUID{})
	assert.Equal(t, kernel.ErrTenantIDIsNotConstructed, err)
}
