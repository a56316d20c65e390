package repos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dayfleet/dayfleet/internal/db/models"
)

// RegistryTestSuite provides a base test suite for registry repository tests
type RegistryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	connections *ConnectionRepository
	attempts    *AttemptRepository
}

func (s *RegistryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.Connection{}, &models.ConnectionParameter{}, &models.ProvisionAttempt{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.connections = NewConnectionRepository(db)
	s.attempts = NewAttemptRepository(db)
	s.ctx = context.Background()
}

func (s *RegistryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	require.NoError(s.T(), err)
	require.NoError(s.T(), sqlDB.Close())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
