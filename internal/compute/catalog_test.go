package compute

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayfleet/dayfleet/internal/types"
)

func TestResolveCatalogPicksNewestImage(t *testing.T) {
	mock := &MockEC2{
		DescribeImagesFn: func(input *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error) {
			if aws.StringValue(input.Owners[0]) != "099720109477" {
				return &ec2.DescribeImagesOutput{}, nil
			}
			return &ec2.DescribeImagesOutput{Images: []*ec2.Image{
				{ImageId: aws.String("ami-old"), CreationDate: aws.String("2023-01-01T00:00:00.000Z")},
				{ImageId: aws.String("ami-new"), CreationDate: aws.String("2024-06-01T00:00:00.000Z")},
				{ImageId: aws.String("ami-mid"), CreationDate: aws.String("2023-09-01T00:00:00.000Z")},
			}}, nil
		},
	}

	images := ResolveCatalog(context.Background(), mock)
	require.Len(t, images, 1)
	assert.Equal(t, "ami-new", images[0].ID)
	assert.Equal(t, "Ubuntu 22.04 LTS", images[0].Label)
	assert.Equal(t, types.FamilyUbuntu, images[0].Family)
	assert.False(t, images[0].SupportsDesktop)
}

func TestResolveCatalogTieBreaksByEnumerationOrder(t *testing.T) {
	mock := &MockEC2{
		DescribeImagesFn: func(input *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error) {
			if aws.StringValue(input.Owners[0]) != "amazon" {
				return &ec2.DescribeImagesOutput{}, nil
			}
			return &ec2.DescribeImagesOutput{Images: []*ec2.Image{
				{ImageId: aws.String("ami-first"), CreationDate: aws.String("2024-01-01T00:00:00.000Z")},
				{ImageId: aws.String("ami-second"), CreationDate: aws.String("2024-01-01T00:00:00.000Z")},
			}}, nil
		},
	}

	images := ResolveCatalog(context.Background(), mock)
	// Two "amazon" catalog entries match the same registry response.
	require.NotEmpty(t, images)
	for _, image := range images {
		assert.Equal(t, "ami-first", image.ID)
	}
}

func TestResolveCatalogDropsEmptyEntries(t *testing.T) {
	mock := &MockEC2{}
	images := ResolveCatalog(context.Background(), mock)
	assert.Empty(t, images)
}

func TestResolveCatalogIsolatesFailures(t *testing.T) {
	// One registry query failing must not abort resolution of the others.
	mock := &MockEC2{
		DescribeImagesFn: func(input *ec2.DescribeImagesInput) (*ec2.DescribeImagesOutput, error) {
			owner := aws.StringValue(input.Owners[0])
			if owner == "aws-marketplace" {
				return nil, fmt.Errorf("registry unavailable")
			}
			return &ec2.DescribeImagesOutput{Images: []*ec2.Image{
				{ImageId: aws.String("ami-" + owner), CreationDate: aws.String("2024-01-01T00:00:00.000Z")},
			}}, nil
		},
	}

	images := ResolveCatalog(context.Background(), mock)
	// amazon x2 and ubuntu owner still resolve; the two marketplace entries drop.
	require.Len(t, images, 3)
	labels := make([]string, 0, len(images))
	for _, image := range images {
		labels = append(labels, image.Label)
	}
	assert.Contains(t, labels, "Amazon Linux 2")
	assert.Contains(t, labels, "Ubuntu 22.04 LTS")
	assert.Contains(t, labels, "Windows Server 2022")
}
