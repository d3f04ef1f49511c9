package config

import (
	"path/filepath"
	"testing"

	"quickbite-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateSeedsStatusCatalog(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	// Migrating twice must not duplicate catalog rows.
	for i := 0; i < 2; i++ {
		if err := Migrate(db); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}

	var count int64
	if err := db.Model(&models.OrderStatus{}).Count(&count).Error; err != nil {
		t.Fatalf("count statuses: %v", err)
	}
	if count != 3 {
		t.Errorf("status catalog has %d rows, want 3", count)
	}

	var inProgress models.OrderStatus
	if err := db.Where("name = ?", models.StatusInProgress).First(&inProgress).Error; err != nil {
		t.Errorf("%q missing from catalog: %v", models.StatusInProgress, err)
	}
}
