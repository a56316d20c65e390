package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dayfleet/dayfleet/internal/compute"
	"github.com/dayfleet/dayfleet/internal/db/models"
	"github.com/dayfleet/dayfleet/internal/db/repos"
	"github.com/dayfleet/dayfleet/internal/logger"
	"github.com/dayfleet/dayfleet/internal/password"
	"github.com/dayfleet/dayfleet/internal/types"
)

// Provisioner orchestrates the provisioning and teardown workflows across the
// compute provider and the gateway registry. There is no shared transaction
// between the two systems: a step failure leaves earlier side effects in
// place, each step outcome is recorded, and compensating cleanup is an
// operator responsibility (see Fleet.Orphans).
type Provisioner struct {
	api         compute.EC2API
	catalog     *Catalog
	connections *repos.ConnectionRepository
	attempts    *repos.AttemptRepository
	keyName     string
	poll        compute.PollPolicy
}

// NewProvisioner creates a new provisioner service instance. keyName is the
// provider key pair attached to every launched instance.
func NewProvisioner(
	api compute.EC2API,
	catalog *Catalog,
	connections *repos.ConnectionRepository,
	attempts *repos.AttemptRepository,
	keyName string,
	poll compute.PollPolicy,
) *Provisioner {
	return &Provisioner{
		api:         api,
		catalog:     catalog,
		connections: connections,
		attempts:    attempts,
		keyName:     keyName,
		poll:        poll,
	}
}

// Provision turns a request into a running, gateway-registered machine:
// launch, bounded wait for a public address, ingress authorization, and the
// gateway connection upsert. Validation failures are rejected before any side
// effect; later failures return an error without unwinding prior steps.
// Concurrent invocations for distinct names are independent; two calls racing
// on the same name resolve last-writer-wins at the registry.
func (s *Provisioner) Provision(ctx context.Context, req types.ProvisionRequest) (*types.ProvisionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tier, err := types.ParseTier(req.Tier)
	if err != nil {
		return nil, types.ErrInvalidInput("%v", err)
	}

	image := s.catalog.Find(ctx, req.ImageID)
	if image == nil {
		return nil, types.ErrInvalidInput("image %q is not in the catalog", req.ImageID)
	}

	protocol := types.Protocol(req.Protocol)
	if protocol == "" {
		protocol = inferProtocol(image)
	}

	credential, err := password.Generate(password.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate credential: %w", err)
	}

	attemptID := uuid.New().String()
	logger.InfoWithFields("provisioning instance", map[string]interface{}{
		"attempt_id": attemptID,
		"name":       req.Name,
		"image":      image.Label,
		"tier":       tier.String(),
		"protocol":   string(protocol),
	})

	launched, err := compute.Launch(ctx, s.api, compute.LaunchSpec{
		ImageID:      req.ImageID,
		InstanceType: types.InstanceTypeForTier(tier),
		KeyName:      s.keyName,
		UserData:     BootstrapScript(protocol, image.Family, credential),
		Name:         req.Name,
		Tier:         tier,
	})
	if err != nil {
		s.recordStep(ctx, attemptID, req.Name, "", models.StepLaunch, err)
		return nil, err
	}
	s.recordStep(ctx, attemptID, req.Name, launched.InstanceID, models.StepLaunch, nil)

	address, err := compute.WaitForAddress(ctx, s.api, launched.InstanceID, s.poll)
	s.recordStep(ctx, attemptID, req.Name, launched.InstanceID, models.StepAddress, err)
	if err != nil {
		return nil, err
	}

	err = compute.AuthorizeRemoteAccess(ctx, s.api, launched.SecurityGroupID)
	s.recordStep(ctx, attemptID, req.Name, launched.InstanceID, models.StepIngress, err)
	if err != nil {
		return nil, err
	}

	err = s.registerConnection(ctx, req.Name, protocol, address, image.Family, credential)
	s.recordStep(ctx, attemptID, req.Name, launched.InstanceID, models.StepRegistry, err)
	if err != nil {
		return nil, err
	}

	return &types.ProvisionResult{
		InstanceID:     launched.InstanceID,
		Address:        address,
		ConnectionName: req.Name,
		Protocol:       protocol,
	}, nil
}

// Teardown terminates an instance and removes its gateway connection. The two
// operations are independent: a termination refusal is logged and recorded
// but does not block the registry deletion, so an orphaned machine with no
// gateway entry is possible and surfaces via Fleet.Orphans.
func (s *Provisioner) Teardown(ctx context.Context, req types.TeardownRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := compute.Terminate(ctx, s.api, req.InstanceID); err != nil {
		logger.ErrorWithFields("termination request failed; gateway connection will still be removed", map[string]interface{}{
			"name":        req.Name,
			"instance_id": req.InstanceID,
			"error":       err.Error(),
		})
	}

	if err := s.connections.DeleteByName(ctx, req.Name); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRegistryWrite, err)
	}
	return nil
}

// Start starts a stopped instance.
func (s *Provisioner) Start(ctx context.Context, req types.LifecycleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return compute.Start(ctx, s.api, req.InstanceID)
}

// Stop stops a running instance.
func (s *Provisioner) Stop(ctx context.Context, req types.LifecycleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return compute.Stop(ctx, s.api, req.InstanceID)
}

// inferProtocol picks rdp for desktop-capable or Windows images, ssh otherwise.
func inferProtocol(image *types.BootImage) types.Protocol {
	if image.SupportsDesktop || image.Family == types.FamilyWindows {
		return types.ProtocolRDP
	}
	return types.ProtocolSSH
}

// registerConnection upserts the connection row and replaces its parameter
// set. The two writes share no transaction; a crash in between is detectable
// by the viewer as a connection that cannot establish a tunnel.
func (s *Provisioner) registerConnection(ctx context.Context, name string, protocol types.Protocol, address string, family types.OSFamily, credential string) error {
	if err := s.connections.Upsert(ctx, name, string(protocol)); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRegistryWrite, err)
	}

	conn, err := s.connections.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrRegistryWrite, err)
	}

	params := map[string]string{
		models.ParamHostname:   address,
		models.ParamPort:       strconv.Itoa(protocol.Port()),
		models.ParamUsername:   DefaultUsername(protocol, family),
		models.ParamPassword:   credential,
		models.ParamIgnoreCert: "true",
		models.ParamSecurity:   "any",
	}
	if err := s.connections.ReplaceParameters(ctx, conn.ConnectionID, params); err != nil {
		return fmt.Errorf("%w: %v", types.ErrRegistryWrite, err)
	}
	return nil
}

// recordStep persists a step outcome. Recording is observational; its own
// failures are logged and never alter the workflow result.
func (s *Provisioner) recordStep(ctx context.Context, attemptID, name, instanceID string, step models.ProvisionStep, stepErr error) {
	attempt := &models.ProvisionAttempt{
		AttemptID:  attemptID,
		Name:       name,
		InstanceID: instanceID,
		Step:       step,
		Status:     models.AttemptSucceeded,
	}
	if stepErr != nil {
		attempt.Status = models.AttemptFailed
		attempt.Error = stepErr.Error()
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		logger.Warnf("failed to record %s step for %q: %v", step, name, err)
	}
}
