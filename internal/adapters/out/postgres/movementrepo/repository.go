package movementrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/adapters/out/postgres/pgerrs"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/movement"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockMovementRepository implements ports.StockMovementRepository using GORM.
type GormStockMovementRepository struct {
	db *gorm.DB
}

func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

func (r *GormStockMovementRepository) Add(ctx context.Context, aggregate *movement.StockMovement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerrs.UniqueViolation(err); ok {
			return errs.NewObjectAlreadyExistsErrorWithCause("stockMovement", aggregate.ID().String(), err)
		}
		return err
	}

	return nil
}

// Update persists lifecycle changes. The row must still carry the version
// the aggregate was loaded with.
func (r *GormStockMovementRepository) Update(ctx context.Context, aggregate *movement.StockMovement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockMovementDTO{}).
		Where("id = ? AND tenant_id = ? AND version = ?", dto.ID, dto.TenantID, dto.Version).
		Updates(dto.lifecycleColumns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"stockMovement",
			fmt.Errorf("stock movement %s was changed or removed concurrently", aggregate.ID()),
		)
	}

	return nil
}

func (r *GormStockMovementRepository) Get(
	ctx context.Context,
	tenantID kernel.TenantID,
	id kernel.UUID,
) (*movement.StockMovement, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto StockMovementDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.UUID().Bytes(), id.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stockMovement", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
