package principalrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPrincipalRepository implements ports.PrincipalRepository using GORM.
type GormPrincipalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPrincipalRepository(db *gorm.DB, tracker aggregateTracker) *GormPrincipalRepository {
	return &GormPrincipalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a principal. A duplicate id or username yields ports.ErrPrincipalAlreadyExists.
func (r *GormPrincipalRepository) Add(ctx context.Context, aggregate *identity.Principal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.Join(ports.ErrPrincipalAlreadyExists, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the role set and email.
func (r *GormPrincipalRepository) Update(ctx context.Context, aggregate *identity.Principal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PrincipalDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"email": dto.Email,
			"roles": dto.Roles,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("principalID", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPrincipalRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Principal, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormPrincipalRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Principal, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPrincipalRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*identity.Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrincipalDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("principalID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
