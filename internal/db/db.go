package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/hrms/internal/config"
	"github.com/BruksfildServices01/hrms/internal/models"
)

// Open connects to postgres in hosted mode and to the sqlite file in
// local mode. The caller owns the handle and must Close it.
func Open(cfg *config.Config, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.Hosted() {
		dialector = postgres.Open(cfg.DBUrl)
	} else {
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	}

	level := gormlogger.Silent
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    cfg.Hosted(),
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
		// sqlite compares timestamps as text, so every row shares one offset
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Hosted() {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	} else {
		// one writer at a time for the embedded file
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// SQLiteDSN enables foreign keys and a busy timeout on the file.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate synchronises the schema with the declared entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Organisation{},
		&models.User{},
		&models.Employee{},
		&models.Team{},
		&models.EmployeeTeam{},
		&models.Log{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
