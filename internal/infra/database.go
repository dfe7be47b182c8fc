package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/model"
	"github.com/aungmyatthu259369349/market-link-logistics/internal/storage"
)

// NewDatabase opens the configured backend (sqlite locally, postgres in
// production), applies pool settings, runs AutoMigrate, and returns the
// query adapter. Placeholder translation lives entirely inside the selected
// dialector — calling code only ever writes `?`.
func NewDatabase(driver, databaseURL, sqlitePath string) (*storage.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(databaseURL)
	case "sqlite":
		if dir := filepath.Dir(sqlitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		dialector = sqlite.Open(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if driver == "postgres" {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return storage.New(gdb, driver), nil
}

// RunMigrations creates or updates all tables. Both backends are covered by
// AutoMigrate; the models avoid engine-specific column defaults on purpose.
func RunMigrations(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.PasswordReset{},
		&model.Product{},
		&model.Inventory{},
		&model.InboundRecord{},
		&model.OutboundRecord{},
		&model.Order{},
		&model.OrderItem{},
		&model.Tracking{},
		&model.TrackingUpdate{},
	)
}
