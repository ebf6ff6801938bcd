// Package testutil carries shared helpers for the integration and acceptance
// suites: environment guards and session-token fixtures.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/emerald-motors/vehicle-trade-api/config"
	"github.com/emerald-motors/vehicle-trade-api/models"
)

// RequireTestEnvironment fails the test immediately unless GO_ENV is "test".
// The suites wipe and reseed their database; this guard keeps them away from
// anything that isn't a throwaway.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("tests must run with GO_ENV=test (got %q)", env)
	}
}

// RequireTestEnvironmentOrSkip skips instead of failing when GO_ENV is not
// "test". Use for optional suites.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Skipf("skipping: GO_ENV must be \"test\" (got %q)", env)
	}
}

// SetupTestDatabase opens an in-memory database, migrates every model and
// installs it as the active connection
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Supplier{},
		&models.Client{},
		&models.VehicleOrder{},
		&models.Payment{},
		&models.Shipment{},
		&models.ShipmentItem{},
		&models.ClientInvoice{},
		&models.Vehicle{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}
