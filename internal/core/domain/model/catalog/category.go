package catalog

import (
	"errors"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const maxTitleLength = 255

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items. Deleting a category removes its menu items.
type Category struct {
	id    kernel.UUID
	title string

	isConstructed bool
}

// NewCategory validates the identifier and title.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setTitle(title),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Title() string {
	return c.title
}

// Rename replaces the title.
func (c *Category) Rename(title string) error {
	return c.setTitle(title)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setTitle(title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	c.title = title
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return "", errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	return title, nil
}
