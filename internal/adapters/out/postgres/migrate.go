package postgres

import (
	"restaurant/internal/adapters/out/postgres/cartrepo"
	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/principalrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the repositories and query handlers use.
// Referenced tables are migrated before the tables holding foreign keys to them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&principalrepo.PrincipalDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.MenuItemDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}
