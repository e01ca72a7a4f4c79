package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// manages.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&cameraModel{},
		&customerModel{},
		&rentalModel{},
	)
}
