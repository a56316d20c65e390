package repos

import (
	"github.com/dayfleet/dayfleet/internal/db/models"
)

func (s *RegistryTestSuite) TestUpsertCreatesThenUpdates() {
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-1", "ssh"))

	first, err := s.connections.GetByName(s.ctx, "day-1")
	s.Require().NoError(err)
	s.Equal("ssh", first.Protocol)

	// Provisioning the same name again must update the row, not duplicate it.
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-1", "rdp"))

	second, err := s.connections.GetByName(s.ctx, "day-1")
	s.Require().NoError(err)
	s.Equal("rdp", second.Protocol)

	var count int64
	s.Require().NoError(s.db.Model(&models.Connection{}).Where("connection_name = ?", "day-1").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *RegistryTestSuite) TestReplaceParameters() {
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-1", "ssh"))
	conn, err := s.connections.GetByName(s.ctx, "day-1")
	s.Require().NoError(err)

	err = s.connections.ReplaceParameters(s.ctx, conn.ConnectionID, map[string]string{
		models.ParamHostname: "10.0.0.5",
		models.ParamPort:     "22",
	})
	s.Require().NoError(err)

	// A later provisioning run replaces the whole set.
	err = s.connections.ReplaceParameters(s.ctx, conn.ConnectionID, map[string]string{
		models.ParamHostname: "10.0.0.9",
		models.ParamUsername: "ubuntu",
	})
	s.Require().NoError(err)

	params, err := s.connections.GetParameters(s.ctx, conn.ConnectionID)
	s.Require().NoError(err)
	s.Equal(map[string]string{
		models.ParamHostname: "10.0.0.9",
		models.ParamUsername: "ubuntu",
	}, params)
}

func (s *RegistryTestSuite) TestDeleteByName() {
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-1", "ssh"))
	conn, err := s.connections.GetByName(s.ctx, "day-1")
	s.Require().NoError(err)
	s.Require().NoError(s.connections.ReplaceParameters(s.ctx, conn.ConnectionID, map[string]string{
		models.ParamHostname: "10.0.0.5",
	}))

	s.Require().NoError(s.connections.DeleteByName(s.ctx, "day-1"))

	_, err = s.connections.GetByName(s.ctx, "day-1")
	s.Error(err)

	params, err := s.connections.GetParameters(s.ctx, conn.ConnectionID)
	s.Require().NoError(err)
	s.Empty(params)
}

func (s *RegistryTestSuite) TestDeleteByNameMissingIsNotAnError() {
	s.NoError(s.connections.DeleteByName(s.ctx, "never-existed"))
}

func (s *RegistryTestSuite) TestListNames() {
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-1", "ssh"))
	s.Require().NoError(s.connections.Upsert(s.ctx, "day-2", "rdp"))

	names, err := s.connections.ListNames(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"day-1", "day-2"}, names)
}

func (s *RegistryTestSuite) TestAttemptRecording() {
	attempt := &models.ProvisionAttempt{
		AttemptID: "11111111-2222-3333-4444-555555555555",
		Name:      "day-1",
		Step:      models.StepLaunch,
		Status:    models.AttemptSucceeded,
	}
	s.Require().NoError(s.attempts.Create(s.ctx, attempt))

	failed := &models.ProvisionAttempt{
		AttemptID:  "11111111-2222-3333-4444-555555555555",
		Name:       "day-1",
		InstanceID: "i-123",
		Step:       models.StepAddress,
		Status:     models.AttemptFailed,
		Error:      "timed out waiting for public address",
	}
	s.Require().NoError(s.attempts.Create(s.ctx, failed))

	attempts, err := s.attempts.ListByName(s.ctx, "day-1")
	s.Require().NoError(err)
	s.Require().Len(attempts, 2)
	s.Equal(models.StepLaunch, attempts[0].Step)
	s.Equal(models.AttemptFailed, attempts[1].Status)
}
