package compute

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// Terminate requests termination of an instance. It does not wait for the
// instance to reach a terminal state, but the provider's acknowledgment (or
// refusal) is returned so callers can record the outcome.
func Terminate(ctx context.Context, api EC2API, instanceID string) error {
	_, err := api.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		return fmt.Errorf("failed to terminate instance %s: %w", instanceID, err)
	}
	return nil
}

// Start starts a stopped instance.
func Start(ctx context.Context, api EC2API, instanceID string) error {
	_, err := api.StartInstancesWithContext(ctx, &ec2.StartInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		return fmt.Errorf("failed to start instance %s: %w", instanceID, err)
	}
	return nil
}

// Stop stops a running instance.
func Stop(ctx context.Context, api EC2API, instanceID string) error {
	_, err := api.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		return fmt.Errorf("failed to stop instance %s: %w", instanceID, err)
	}
	return nil
}
