package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"warehouse/internal/adapters/out/postgres/pgerrs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_locations_tenant_barcode"})

	constraint, ok := pgerrs.UniqueViolation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "ux_locations_tenant_barcode", constraint)

	_, ok = pgerrs.UniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = pgerrs.UniqueViolation(errors.New("23505"))
	assert.False(t, ok)
}
