package repository

import "gorm.io/gorm"

// Migrate creates the four tables and the partial unique index that backs the
// single-admin invariant. The bootstrap endpoint still pre-checks, but a race
// between two concurrent bootstraps now loses at the storage layer instead of
// producing a second admin.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&leadModel{},
		&noteModel{},
		&notificationModel{},
	); err != nil {
		return err
	}
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin ON users (role) WHERE role = 'admin'`,
	).Error
}
