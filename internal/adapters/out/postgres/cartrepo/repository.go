package cartrepo

import (
	"context"
	"errors"

	"restaurant/internal/adapters/out/postgres/principalrepo"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get returns the owner's cart. An owner without lines gets an empty cart.
func (r *GormCartRepository) Get(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomain(ownerID, dtos)
}

// GetForUpdate locks the owner's principal row before reading the lines, so two
// transactions working on the same cart are serialized even while it is empty.
func (r *GormCartRepository) GetForUpdate(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var owner principalrepo.PrincipalDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&owner, "id = ?", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ownerID", ownerID)
		}
		return nil, err
	}

	return r.Get(ctx, ownerID)
}

// Save replaces the stored lines with the aggregate's lines.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	owner := aggregate.OwnerID().Bytes()
	db := r.db.WithContext(ctx)

	keep := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		keep = append(keep, dto.ID)
	}

	stale := db.Where("owner_id = ?", owner)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&CartLineDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) > 0 {
		if err := db.
			Omit("Owner", "MenuItem").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
			}).
			Create(&dtos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.OwnerID(), aggregate)
	return nil
}
