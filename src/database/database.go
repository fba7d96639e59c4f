package database

import (
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
)

var (
	databaseConnection *gorm.DB
	onceDatabase       sync.Once
)

// InitializeDatabaseConnection opens the shared gorm connection. A
// "host=..." connection string selects the postgres driver, anything else is
// treated as a sqlite path (dev and tests).
func InitializeDatabaseConnection(connectionString string) {
	onceDatabase.Do(func() {
		db, err := Open(connectionString)
		if err != nil {
			logger.Default().Fatal(err, "Cannot establish database connection")
		}
		databaseConnection = db
	})
}

func Open(connectionString string) (*gorm.DB, error) {
	if strings.HasPrefix(connectionString, "host=") {
		return gorm.Open(postgres.Open(connectionString), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(connectionString), &gorm.Config{})
}

func GetDatabaseConnection() *gorm.DB {
	if databaseConnection == nil {
		panic("Database connection not initialized: call InitializeDatabaseConnection() first")
	}
	return databaseConnection
}
