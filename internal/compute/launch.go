package compute

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/dayfleet/dayfleet/internal/types"
)

// LaunchSpec carries everything needed to request a new instance.
type LaunchSpec struct {
	ImageID      string
	InstanceType string
	KeyName      string
	// UserData is the raw bootstrap script; it is base64-encoded on the wire.
	UserData string
	Name     string
	Tier     types.SizingTier
}

// LaunchedInstance is the subset of the provider's launch response the
// workflow needs downstream.
type LaunchedInstance struct {
	InstanceID      string
	SecurityGroupID string
}

// Launch requests a single instance from the provider, tagged with the
// user-assigned name and tier. Returns ErrLaunchFailed when the provider
// response carries no instance identifier.
func Launch(ctx context.Context, api EC2API, spec LaunchSpec) (*LaunchedInstance, error) {
	reservation, err := api.RunInstancesWithContext(ctx, &ec2.RunInstancesInput{
		ImageId:      aws.String(spec.ImageID),
		InstanceType: aws.String(spec.InstanceType),
		MinCount:     aws.Int64(1),
		MaxCount:     aws.Int64(1),
		KeyName:      aws.String(spec.KeyName),
		UserData:     aws.String(base64.StdEncoding.EncodeToString([]byte(spec.UserData))),
		TagSpecifications: []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeInstance),
				Tags: []*ec2.Tag{
					{Key: aws.String("Name"), Value: aws.String(spec.Name)},
					{Key: aws.String("PricingTier"), Value: aws.String(spec.Tier.String())},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrLaunchFailed, err)
	}
	if reservation == nil || len(reservation.Instances) == 0 || aws.StringValue(reservation.Instances[0].InstanceId) == "" {
		return nil, fmt.Errorf("%w: provider returned no instance", types.ErrLaunchFailed)
	}

	inst := reservation.Instances[0]
	launched := &LaunchedInstance{InstanceID: aws.StringValue(inst.InstanceId)}
	if len(inst.SecurityGroups) > 0 {
		launched.SecurityGroupID = aws.StringValue(inst.SecurityGroups[0].GroupId)
	}
	return launched, nil
}

// PollPolicy bounds the address-polling loop. Injectable so tests can run the
// loop near-instantly.
type PollPolicy struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPollPolicy is the production polling budget: 15 attempts at 10s,
// about 150s total.
var DefaultPollPolicy = PollPolicy{Interval: 10 * time.Second, MaxAttempts: 15}

// WaitForAddress polls the provider until the instance reports a public DNS
// name or the policy's budget is exhausted, in which case ErrAddressTimeout is
// returned. The loop sleeps only the calling goroutine and takes no locks, so
// unrelated workflow invocations proceed independently.
func WaitForAddress(ctx context.Context, api EC2API, instanceID string, policy PollPolicy) (string, error) {
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		out, err := api.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
			InstanceIds: []*string{aws.String(instanceID)},
		})
		if err == nil && len(out.Reservations) > 0 && len(out.Reservations[0].Instances) > 0 {
			if dns := aws.StringValue(out.Reservations[0].Instances[0].PublicDnsName); dns != "" {
				return dns, nil
			}
		}
		time.Sleep(policy.Interval)
	}
	return "", fmt.Errorf("%w: instance %s after %d attempts", types.ErrAddressTimeout, instanceID, policy.MaxAttempts)
}
