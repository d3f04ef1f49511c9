package config

import (
	"log"

	"quickbite-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects, migrates the schema and seeds the status catalog.
func OpenDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrated successfully")
	return db, nil
}

// Migrate runs AutoMigrate for all models and seeds lookup tables. Split out
// so tests can run it against throwaway in-memory databases.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Customer{},
		&models.Courier{},
		&models.Restaurant{},
		&models.Product{},
		&models.OrderStatus{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		return err
	}
	return seedStatuses(db)
}

// seedStatuses fills the order-status catalog. The assembler depends on
// "in progress" existing; a missing row there is a configuration error.
func seedStatuses(db *gorm.DB) error {
	for _, name := range []string{
		models.StatusInProgress,
		models.StatusDelivered,
		models.StatusCancelled,
	} {
		if err := db.FirstOrCreate(&models.OrderStatus{}, models.OrderStatus{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
