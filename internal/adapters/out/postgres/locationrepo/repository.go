package locationrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/adapters/out/postgres/pgerrs"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
// Every statement filters by tenant_id.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add inserts a new location. Violations of the per-tenant barcode or code
// indexes are reported as errs.ObjectAlreadyExistsError.
func (r *GormLocationRepository) Add(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, aggregate)
	}

	return nil
}

// Update writes the aggregate if the stored version still equals the loaded
// one and bumps the stored version.
func (r *GormLocationRepository) Update(ctx context.Context, aggregate *location.Location) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LocationDTO{}).
		Where("id = ? AND tenant_id = ? AND version = ?", dto.ID, dto.TenantID, dto.Version).
		Updates(dto.updateColumns())
	if result.Error != nil {
		return translateWriteError(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"location",
			fmt.Errorf("location %s was changed or removed concurrently", aggregate.ID()),
		)
	}

	return nil
}

func (r *GormLocationRepository) Get(
	ctx context.Context,
	tenantID kernel.TenantID,
	id kernel.UUID,
) (*location.Location, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto LocationDTO
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID.UUID().Bytes(), id.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) FindCandidates(
	ctx context.Context,
	tenantID kernel.TenantID,
	filter ports.LocationFilter,
) ([]*location.Location, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID.UUID().Bytes())

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, int(s))
		}
		query = query.Where("status IN ?", statuses)
	}
	if len(filter.Types) > 0 {
		types := make([]int, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, int(t))
		}
		query = query.Where("type IN ?", types)
	}
	if filter.Zone != "" {
		query = query.Where("zone = ?", filter.Zone)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var dtos []LocationDTO
	if err := query.Order("barcode").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}

func (r *GormLocationRepository) ExistsByBarcode(
	ctx context.Context,
	tenantID kernel.TenantID,
	barcode location.Barcode,
) (bool, error) {
	if err := errors.Join(tenantID.Validate(), barcode.Validate()); err != nil {
		return false, err
	}
	return r.exists(ctx, "tenant_id = ? AND barcode = ?", tenantID.UUID().Bytes(), barcode.String())
}

func (r *GormLocationRepository) ExistsByCode(ctx context.Context, tenantID kernel.TenantID, code string) (bool, error) {
	if err := tenantID.Validate(); err != nil {
		return false, err
	}
	if code == "" {
		return false, errs.NewValueIsRequiredError("code")
	}
	return r.exists(ctx, "tenant_id = ? AND code = ?", tenantID.UUID().Bytes(), code)
}

func (r *GormLocationRepository) exists(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&LocationDTO{}).Where(where, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateWriteError(err error, aggregate *location.Location) error {
	constraint, ok := pgerrs.UniqueViolation(err)
	if !ok {
		return err
	}

	switch constraint {
	case codeConstraint:
		return errs.NewObjectAlreadyExistsErrorWithCause("code", aggregate.Code(), err)
	case barcodeConstraint:
		return errs.NewObjectAlreadyExistsErrorWithCause("barcode", aggregate.Barcode().String(), err)
	default:
		return errs.NewObjectAlreadyExistsErrorWithCause("location", aggregate.ID().String(), err)
	}
}
