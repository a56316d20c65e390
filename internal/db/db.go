// Package db provides connectivity to the gateway connection database.
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dayfleet/dayfleet/internal/db/models"
)

// Database configuration defaults. The schema belongs to the remote-access
// gateway; this service only reads and writes connection rows in it.
const (
	// DefaultHost is the default database host
	DefaultHost = "localhost"
	// DefaultPort is the default database port
	DefaultPort = 3306
	// DefaultUser is the default database user
	DefaultUser = "guacamole_user"
	// DefaultDBName is the default database name
	DefaultDBName = "guacamole_db"
	// DefaultMaxOpenConns bounds the connection pool; callers queue rather
	// than fail when it is exhausted.
	DefaultMaxOpenConns = 10
)

// Options represents database connection configuration options
type Options struct {
	Host         string
	User         string
	Password     string
	DBName       string
	Port         int
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// New creates a new database connection with the given options. The gateway's
// own tables are assumed to exist; only this service's provisioning-attempt
// table is migrated.
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		opts.User, opts.Password, opts.Host, opts.Port, opts.DBName)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(opts.MaxOpenConns)

	if err := gormDB.AutoMigrate(&models.ProvisionAttempt{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func setDefaults(opts Options) Options {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.User == "" {
		opts.User = DefaultUser
	}
	if opts.DBName == "" {
		opts.DBName = DefaultDBName
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = DefaultMaxOpenConns
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	return opts
}
