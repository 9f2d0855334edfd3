package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/utils"
)

type DBService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDBService opens the relational store. SQLite is the default so a local
// checkout runs with zero setup; DB_DRIVER=postgres switches to the managed
// database used in deployment.
func NewDBService(log *logger.Logger) (*DBService, error) {
	serviceLog := log.With("service", "DBService")

	driver := strings.ToLower(utils.GetEnv("DB_DRIVER", "sqlite", log))

	var (
		gormDB *gorm.DB
		err    error
	)
	switch driver {
	case "postgres":
		host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
		port := utils.GetEnv("POSTGRES_PORT", "5432", log)
		user := utils.GetEnv("POSTGRES_USER", "postgres", log)
		password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
		name := utils.GetEnv("POSTGRES_NAME", "wellness", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

		serviceLog.Info("Connecting to Postgres...")
		gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		path := utils.GetEnv("DB_PATH", "mental_health.db", log)
		serviceLog.Info("Opening SQLite database", "path", path)
		gormDB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	if err != nil {
		serviceLog.Error("Failed to open database", "driver", driver, "error", err)
		return nil, fmt.Errorf("open database (%s): %w", driver, err)
	}

	return &DBService{db: gormDB, log: serviceLog}, nil
}

func (s *DBService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&types.ChatMessage{},
		&types.JournalEntry{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DBService) DB() *gorm.DB {
	return s.db
}
