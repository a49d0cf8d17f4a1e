package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
)

// ListCategoriesQuery returns every category ordered by title. It is public.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// GetCategoryQuery returns one category.
type GetCategoryQuery struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(categoryID kernel.UUID) (GetCategoryQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

// CategoryQueryHandler serves both category queries.
type CategoryQueryHandler struct {
	db *gorm.DB
}

func NewCategoryQueryHandler(db *gorm.DB) CategoryQueryHandler {
	return CategoryQueryHandler{db: db}
}

type categoryRow struct {
	ID    uuid.UUID
	Title string
}

func (r categoryRow) toView() (CategoryView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return CategoryView{}, err
	}
	return CategoryView{ID: id, Title: r.Title}, nil
}

func (h CategoryQueryHandler) List(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []categoryRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, title
		FROM categories
		ORDER BY title, id
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (h CategoryQueryHandler) Get(ctx context.Context, query GetCategoryQuery) (CategoryView, error) {
	if err := query.Validate(); err != nil {
		return CategoryView{}, err
	}

	var rows []categoryRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, title
		FROM categories
		WHERE id = ?
	`, query.CategoryID().Bytes()).Scan(&rows).Error; err != nil {
		return CategoryView{}, err
	}
	if len(rows) == 0 {
		return CategoryView{}, errs.NewObjectNotFoundError("categoryID", query.CategoryID())
	}

	return rows[0].toView()
}
