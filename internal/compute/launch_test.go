package compute

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayfleet/dayfleet/internal/types"
)

var fastPoll = PollPolicy{Interval: time.Millisecond, MaxAttempts: 15}

func TestLaunchEncodesRequest(t *testing.T) {
	var captured *ec2.RunInstancesInput
	mock := &MockEC2{
		RunInstancesFn: func(input *ec2.RunInstancesInput) (*ec2.Reservation, error) {
			captured = input
			return &ec2.Reservation{Instances: []*ec2.Instance{{
				InstanceId:     aws.String("i-123"),
				SecurityGroups: []*ec2.GroupIdentifier{{GroupId: aws.String("sg-1")}},
			}}}, nil
		},
	}

	launched, err := Launch(context.Background(), mock, LaunchSpec{
		ImageID:      "ami-1",
		InstanceType: "t3.medium",
		KeyName:      "days-keypair",
		UserData:     "#cloud-config",
		Name:         "day-1",
		Tier:         types.TierStandard,
	})
	require.NoError(t, err)
	assert.Equal(t, "i-123", launched.InstanceID)
	assert.Equal(t, "sg-1", launched.SecurityGroupID)

	require.NotNil(t, captured)
	assert.Equal(t, "ami-1", aws.StringValue(captured.ImageId))
	assert.Equal(t, "t3.medium", aws.StringValue(captured.InstanceType))
	assert.Equal(t, int64(1), aws.Int64Value(captured.MinCount))
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("#cloud-config")), aws.StringValue(captured.UserData))

	require.Len(t, captured.TagSpecifications, 1)
	tags := map[string]string{}
	for _, tag := range captured.TagSpecifications[0].Tags {
		tags[aws.StringValue(tag.Key)] = aws.StringValue(tag.Value)
	}
	assert.Equal(t, "day-1", tags["Name"])
	assert.Equal(t, "Standard", tags["PricingTier"])
}

func TestLaunchFailsWithoutInstanceID(t *testing.T) {
	mock := &MockEC2{
		RunInstancesFn: func(_ *ec2.RunInstancesInput) (*ec2.Reservation, error) {
			return &ec2.Reservation{}, nil
		},
	}

	_, err := Launch(context.Background(), mock, LaunchSpec{ImageID: "ami-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLaunchFailed)
}

func TestWaitForAddressReturnsOnceAssigned(t *testing.T) {
	calls := 0
	mock := &MockEC2{
		DescribeInstancesFn: func(_ *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
			calls++
			inst := &ec2.Instance{InstanceId: aws.String("i-123")}
			if calls >= 2 {
				inst.PublicDnsName = aws.String("10.0.0.5")
			}
			return &ec2.DescribeInstancesOutput{Reservations: []*ec2.Reservation{
				{Instances: []*ec2.Instance{inst}},
			}}, nil
		},
	}

	addr, err := WaitForAddress(context.Background(), mock, "i-123", fastPoll)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", addr)
	assert.Equal(t, 2, calls)
}

func TestWaitForAddressTimesOut(t *testing.T) {
	calls := 0
	mock := &MockEC2{
		DescribeInstancesFn: func(_ *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
			calls++
			return &ec2.DescribeInstancesOutput{Reservations: []*ec2.Reservation{
				{Instances: []*ec2.Instance{{InstanceId: aws.String("i-123")}}},
			}}, nil
		},
	}

	_, err := WaitForAddress(context.Background(), mock, "i-123", fastPoll)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAddressTimeout)
	assert.Equal(t, fastPoll.MaxAttempts, calls)
}
