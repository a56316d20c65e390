// Package compute provides access to the EC2 compute provider: image catalog
// resolution, fleet listing, instance launch with bounded address polling,
// ingress authorization, and lifecycle operations.
package compute

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/dayfleet/dayfleet/config"
)

// DefaultRegion is used when AWS_REGION is not set.
const DefaultRegion = "ap-southeast-1"

// EC2API is the subset of the EC2 client used by this package. *ec2.EC2
// satisfies it; tests substitute MockEC2.
type EC2API interface {
	DescribeImagesWithContext(aws.Context, *ec2.DescribeImagesInput, ...request.Option) (*ec2.DescribeImagesOutput, error)
	DescribeInstancesWithContext(aws.Context, *ec2.DescribeInstancesInput, ...request.Option) (*ec2.DescribeInstancesOutput, error)
	RunInstancesWithContext(aws.Context, *ec2.RunInstancesInput, ...request.Option) (*ec2.Reservation, error)
	TerminateInstancesWithContext(aws.Context, *ec2.TerminateInstancesInput, ...request.Option) (*ec2.TerminateInstancesOutput, error)
	StartInstancesWithContext(aws.Context, *ec2.StartInstancesInput, ...request.Option) (*ec2.StartInstancesOutput, error)
	StopInstancesWithContext(aws.Context, *ec2.StopInstancesInput, ...request.Option) (*ec2.StopInstancesOutput, error)
	AuthorizeSecurityGroupIngressWithContext(aws.Context, *ec2.AuthorizeSecurityGroupIngressInput, ...request.Option) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
}

// NewClient creates an EC2 client for the configured region. Credentials come
// from the SDK's default chain (env, shared config, instance profile). The
// client is safe for concurrent use by independent workflow invocations.
func NewClient() *ec2.EC2 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(config.GetEnv("AWS_REGION", DefaultRegion)),
	}))
	return ec2.New(sess)
}
