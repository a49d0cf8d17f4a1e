package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"restaurant/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout accepted by the importer:
//
//	categories:
//	  - title: Mains
//	    items:
//	      - title: Margherita
//	        price: "9.50"
type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

type seedCategory struct {
	Title string     `yaml:"title"`
	Items []seedItem `yaml:"items"`
}

type seedItem struct {
	Title string `yaml:"title"`
	Price string `yaml:"price"`
}

// Seed is a validated catalog ready to be imported.
type Seed struct {
	Categories []SeedCategory
}

type SeedCategory struct {
	Title string
	Items []SeedItem
}

type SeedItem struct {
	Title string
	Price kernel.Money
}

// ParseSeed decodes and validates a YAML catalog. Every problem found is
// reported, not just the first.
func ParseSeed(data []byte) (Seed, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Seed{}, errors.New("seed: payload is empty")
	}

	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("seed: decode: %w", err)
	}

	var (
		seed     Seed
		problems []error
	)
	seen := make(map[string]bool, len(raw.Categories))

	for i, rc := range raw.Categories {
		title := strings.TrimSpace(rc.Title)
		if title == "" {
			problems = append(problems, fmt.Errorf("categories[%d]: title is required", i))
			continue
		}
		if seen[title] {
			problems = append(problems, fmt.Errorf("categories[%d]: duplicate category %q", i, title))
			continue
		}
		seen[title] = true

		category := SeedCategory{Title: title}
		for j, ri := range rc.Items {
			itemTitle := strings.TrimSpace(ri.Title)
			if itemTitle == "" {
				problems = append(problems, fmt.Errorf("%s.items[%d]: title is required", title, j))
				continue
			}
			price, err := kernel.MoneyFromString(strings.TrimSpace(ri.Price))
			if err != nil {
				problems = append(problems, fmt.Errorf("%s.items[%d] %q: %w", title, j, itemTitle, err))
				continue
			}
			category.Items = append(category.Items, SeedItem{Title: itemTitle, Price: price})
		}
		seed.Categories = append(seed.Categories, category)
	}

	if err := errors.Join(problems...); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// LoadSeedFile reads and parses the catalog at path.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("seed: read %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return Seed{}, fmt.Errorf("seed: %s: %w", path, err)
	}
	return seed, nil
}
