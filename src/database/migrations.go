package database

import (
	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/src/model"
)

func RunMigrations() {
	db := GetDatabaseConnection()
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables...")

	if err := AutoMigrate(db); err != nil {
		migrationLogger.Fatal(err, "Migrating database failed")
	}

	migrationLogger.Info("All tables created (or already exist).")
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.UserMeta{},
		&model.Role{},
		&model.Order{},
		&model.OrderMeta{},
		&model.OrderCategory{},
		&model.OrderCategoryAssignment{},
		&model.LinkedSite{},
		&model.OutboxEvent{},
		&model.ActivityEntry{},
	); err != nil {
		return err
	}

	return seedBuiltinRoles(db)
}

// seedBuiltinRoles makes sure the host-builtin administrator role exists. The
// registrar never creates or removes it, it only grants and revokes
// capabilities on it.
func seedBuiltinRoles(db *gorm.DB) error {
	administrator := model.Role{
		Name:        "administrator",
		DisplayName: "Administrator",
		Builtin:     true,
	}
	return db.Where(model.Role{Name: administrator.Name}).FirstOrCreate(&administrator).Error
}
