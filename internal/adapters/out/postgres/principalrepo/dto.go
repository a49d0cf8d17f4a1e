// Package principalrepo persists principals and their role sets.
package principalrepo

import (
	"time"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PrincipalDTO stores the role set as a text[] of role codes.
type PrincipalDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Username  string         `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email     string         `gorm:"type:varchar(254);not null;default:''"`
	Roles     pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt time.Time
}

func (PrincipalDTO) TableName() string {
	return "principals"
}

func fromDomain(p *identity.Principal) PrincipalDTO {
	return PrincipalDTO{
		ID:       p.ID().Bytes(),
		Username: p.Username(),
		Email:    p.Email(),
		Roles:    p.Roles().Codes(),
	}
}

func toDomain(dto PrincipalDTO) (*identity.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles, err := identity.RoleSetFromCodes(dto.Roles)
	if err != nil {
		return nil, err
	}

	return identity.RestorePrincipal(id, dto.Username, dto.Email, roles)
}
