package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists every principal. Only Admin or Manager may run it.
type ListUsersQuery struct {
	caller identity.Caller

	guard guard.ConstructorGuard
}

func NewListUsersQuery(caller identity.Caller) (ListUsersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type ListUsersQueryHandler struct {
	db      *gorm.DB
	granter services.RoleGranter
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, granter: services.NewRoleGranter()}
}

type userRow struct {
	ID       uuid.UUID
	Username string
	Email    string
	Roles    pq.StringArray
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.granter.CanListUsers(query.caller); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, roles
		FROM principals
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]UserView, 0)
	for rows.Next() {
		var r userRow
		if err = rows.Scan(&r.ID, &r.Username, &r.Email, &r.Roles); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		roles, rolesErr := identity.RoleSetFromCodes(r.Roles)
		if rolesErr != nil {
			return nil, rolesErr
		}

		names := make([]string, 0)
		for _, role := range roles.Roles() {
			names = append(names, role.String())
		}

		users = append(users, UserView{
			ID:       id,
			Username: r.Username,
			Email:    r.Email,
			Roles:    names,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
