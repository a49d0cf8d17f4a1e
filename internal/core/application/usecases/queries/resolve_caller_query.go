package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrResolveCallerQueryIsNotConstructed = errors.New(
	"ResolveCallerQuery must be created via NewResolveCallerQuery constructor",
)

// ResolveCallerQuery loads a principal's role set once per request.
type ResolveCallerQuery struct {
	principalID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveCallerQuery(principalID kernel.UUID) (ResolveCallerQuery, error) {
	if err := principalID.Validate(); err != nil {
		return ResolveCallerQuery{}, err
	}
	return ResolveCallerQuery{principalID: principalID, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveCallerQuery) Validate() error {
	return q.guard.Validate(ErrResolveCallerQueryIsNotConstructed)
}

// ResolveCallerQueryHandler returns *errs.ObjectNotFoundError for unknown
// principals so the caller can provision them.
type ResolveCallerQueryHandler struct {
	db *gorm.DB
}

func NewResolveCallerQueryHandler(db *gorm.DB) ResolveCallerQueryHandler {
	return ResolveCallerQueryHandler{db: db}
}

type rolesRow struct {
	Roles pq.StringArray
}

func (h ResolveCallerQueryHandler) Handle(ctx context.Context, query ResolveCallerQuery) (identity.Caller, error) {
	if err := query.Validate(); err != nil {
		return identity.Caller{}, err
	}

	var rows []rolesRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT roles
		FROM principals
		WHERE id = ?
	`, query.principalID.Bytes()).Scan(&rows).Error; err != nil {
		return identity.Caller{}, err
	}
	if len(rows) == 0 {
		return identity.Caller{}, errs.NewObjectNotFoundError("principalID", query.principalID)
	}

	roles, err := identity.RoleSetFromCodes(rows[0].Roles)
	if err != nil {
		return identity.Caller{}, err
	}

	return identity.NewCaller(query.principalID, roles)
}
