package compute

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// MockEC2 is a configurable in-memory stand-in for the EC2 client, used by
// tests across packages. Unset functions return empty successful responses.
type MockEC2 struct {
	DescribeImagesFn    func(*ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error)
	DescribeInstancesFn func(*ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error)
	RunInstancesFn      func(*ec2.RunInstancesInput) (*ec2.Reservation, error)
	TerminateFn         func(*ec2.TerminateInstancesInput) (*ec2.TerminateInstancesOutput, error)
	StartFn             func(*ec2.StartInstancesInput) (*ec2.StartInstancesOutput, error)
	StopFn              func(*ec2.StopInstancesInput) (*ec2.StopInstancesOutput, error)
	AuthorizeIngressFn  func(*ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
}

var _ EC2API = (*MockEC2)(nil)

// DescribeImagesWithContext implements EC2API
func (m *MockEC2) DescribeImagesWithContext(_ aws.Context, input *ec2.DescribeImagesInput, _ ...request.Option) (*ec2.DescribeImagesOutput, error) {
	if m.DescribeImagesFn != nil {
		return m.DescribeImagesFn(input)
	}
	return &ec2.DescribeImagesOutput{}, nil
}

// DescribeInstancesWithContext implements EC2API
func (m *MockEC2) DescribeInstancesWithContext(_ aws.Context, input *ec2.DescribeInstancesInput, _ ...request.Option) (*ec2.DescribeInstancesOutput, error) {
	if m.DescribeInstancesFn != nil {
		return m.DescribeInstancesFn(input)
	}
	return &ec2.DescribeInstancesOutput{}, nil
}

// RunInstancesWithContext implements EC2API
func (m *MockEC2) RunInstancesWithContext(_ aws.Context, input *ec2.RunInstancesInput, _ ...request.Option) (*ec2.Reservation, error) {
	if m.RunInstancesFn != nil {
		return m.RunInstancesFn(input)
	}
	return &ec2.Reservation{}, nil
}

// TerminateInstancesWithContext implements EC2API
func (m *MockEC2) TerminateInstancesWithContext(_ aws.Context, input *ec2.TerminateInstancesInput, _ ...request.Option) (*ec2.TerminateInstancesOutput, error) {
	if m.TerminateFn != nil {
		return m.TerminateFn(input)
	}
	return &ec2.TerminateInstancesOutput{}, nil
}

// StartInstancesWithContext implements EC2API
func (m *MockEC2) StartInstancesWithContext(_ aws.Context, input *ec2.StartInstancesInput, _ ...request.Option) (*ec2.StartInstancesOutput, error) {
	if m.StartFn != nil {
		return m.StartFn(input)
	}
	return &ec2.StartInstancesOutput{}, nil
}

// StopInstancesWithContext implements EC2API
func (m *MockEC2) StopInstancesWithContext(_ aws.Context, input *ec2.StopInstancesInput, _ ...request.Option) (*ec2.StopInstancesOutput, error) {
	if m.StopFn != nil {
		return m.StopFn(input)
	}
	return &ec2.StopInstancesOutput{}, nil
}

// AuthorizeSecurityGroupIngressWithContext implements EC2API
func (m *MockEC2) AuthorizeSecurityGroupIngressWithContext(_ aws.Context, input *ec2.AuthorizeSecurityGroupIngressInput, _ ...request.Option) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	if m.AuthorizeIngressFn != nil {
		return m.AuthorizeIngressFn(input)
	}
	return &ec2.AuthorizeSecurityGroupIngressOutput{}, nil
}
