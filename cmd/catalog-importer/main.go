// Command catalog-importer loads categories and menu items from a YAML file
// into the restaurant database. Entries are matched by title, so running it
// twice with the same file changes nothing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"restaurant/cmd"
	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	file := flag.String("file", "catalog.yaml", "path to the YAML catalog")
	dryRun := flag.Bool("dry-run", false, "validate the file without writing")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("component", "catalog_importer")

	seed, err := LoadSeedFile(*file)
	if err != nil {
		log.Fatalf("Error reading catalog: %v", err)
	}
	if *dryRun {
		logger.Info("catalog is valid", "file", *file, "categories", len(seed.Categories))
		return
	}

	dbConfig, err := cmd.LoadDBConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(dbConfig.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(cmd.Config{DBConfig: dbConfig}, gormDB, eventlog.NewPublisher(logger), logger)
	imp, err := newImporter(app.CreateCommandHandlers(), app.CreateQueryHandlers())
	if err != nil {
		log.Fatalf("Error preparing import: %v", err)
	}

	stats, err := imp.Import(context.Background(), seed)
	if err != nil {
		log.Fatalf("Error importing catalog: %v", err)
	}
	logger.Info("catalog imported",
		"categories_created", stats.CategoriesCreated,
		"items_created", stats.ItemsCreated,
		"items_updated", stats.ItemsUpdated,
	)
}

type importStats struct {
	CategoriesCreated int
	ItemsCreated      int
	ItemsUpdated      int
}

type importer struct {
	operator identity.Caller

	createCategory commands.CreateCategoryCommandHandler
	createMenuItem commands.CreateMenuItemCommandHandler
	updateMenuItem commands.UpdateMenuItemCommandHandler
	categories     queries.CategoryQueryHandler
	menuItems      queries.MenuItemQueryHandler
}

// newImporter runs the catalog commands as a synthetic Manager so the same
// authorization path as the HTTP API applies.
func newImporter(cmds httpin.CommandHandlers, qs httpin.QueryHandlers) (*importer, error) {
	operator, err := identity.NewCaller(kernel.NewUUID(), identity.NewRoleSet(identity.Manager))
	if err != nil {
		return nil, err
	}
	return &importer{
		operator:       operator,
		createCategory: cmds.CreateCategory,
		createMenuItem: cmds.CreateMenuItem,
		updateMenuItem: cmds.UpdateMenuItem,
		categories:     qs.Categories,
		menuItems:      qs.MenuItems,
	}, nil
}

// Import creates missing categories and menu items and reprices existing ones.
func (imp *importer) Import(ctx context.Context, seed Seed) (importStats, error) {
	var stats importStats

	existing, err := imp.categories.List(ctx, queries.NewListCategoriesQuery())
	if err != nil {
		return stats, err
	}
	categoryIDs := make(map[string]kernel.UUID, len(existing))
	for _, c := range existing {
		categoryIDs[c.Title] = c.ID
	}

	for _, sc := range seed.Categories {
		categoryID, ok := categoryIDs[sc.Title]
		if !ok {
			categoryID = kernel.NewUUID()
			createCmd, cmdErr := commands.NewCreateCategoryCommand(imp.operator, categoryID, sc.Title)
			if cmdErr != nil {
				return stats, cmdErr
			}
			if err = imp.createCategory.Handle(ctx, createCmd); err != nil {
				return stats, fmt.Errorf("create category %q: %w", sc.Title, err)
			}
			stats.CategoriesCreated++
		}

		if err = imp.importItems(ctx, categoryID, sc, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (imp *importer) importItems(ctx context.Context, categoryID kernel.UUID, sc SeedCategory, stats *importStats) error {
	query, err := queries.NewListMenuItemsQuery(&categoryID, "", queries.OrderByTitle)
	if err != nil {
		return err
	}
	current, err := imp.menuItems.List(ctx, query)
	if err != nil {
		return err
	}
	byTitle := make(map[string]queries.MenuItemView, len(current))
	for _, m := range current {
		byTitle[m.Title] = m
	}

	for _, item := range sc.Items {
		existing, ok := byTitle[item.Title]
		switch {
		case !ok:
			createCmd, cmdErr := commands.NewCreateMenuItemCommand(imp.operator, kernel.NewUUID(), item.Title, item.Price, categoryID)
			if cmdErr != nil {
				return cmdErr
			}
			if err = imp.createMenuItem.Handle(ctx, createCmd); err != nil {
				return fmt.Errorf("create menu item %q: %w", item.Title, err)
			}
			stats.ItemsCreated++
		case !existing.Price.IsEqual(item.Price):
			updateCmd, cmdErr := commands.NewUpdateMenuItemCommand(imp.operator, existing.ID, item.Title, item.Price, categoryID)
			if cmdErr != nil {
				return cmdErr
			}
			if err = imp.updateMenuItem.Handle(ctx, updateCmd); err != nil {
				return fmt.Errorf("update menu item %q: %w", item.Title, err)
			}
			stats.ItemsUpdated++
		}
	}
	return nil
}
