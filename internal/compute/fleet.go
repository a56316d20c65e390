package compute

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/dayfleet/dayfleet/internal/types"
)

const (
	// namePlaceholder is shown for instances with no Name tag.
	namePlaceholder = "(no name)"
	// FallbackImageLabel is shown when an instance's image id is no longer in
	// the catalog (deleted or renamed images are indistinguishable here).
	FallbackImageLabel = "Unknown image"
	// canonicalSizeFamily is the instance type family shown in listings.
	canonicalSizeFamily = "t3"
)

// ListInstances returns every instance visible to the caller's credentials,
// normalized for display: canonical size class, derived tier, name tag, and
// the catalog label joined by image id. Ordering follows provider enumeration.
// Read-only; no caching.
func ListInstances(ctx context.Context, api EC2API, catalog []types.BootImage) ([]types.ManagedInstance, error) {
	out, err := api.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}

	labels := make(map[string]string, len(catalog))
	for _, image := range catalog {
		labels[image.ID] = image.Label
	}

	var instances []types.ManagedInstance
	for _, reservation := range out.Reservations {
		for _, inst := range reservation.Instances {
			sizeClass := NormalizeSizeClass(aws.StringValue(inst.InstanceType))
			imageID := aws.StringValue(inst.ImageId)

			label, ok := labels[imageID]
			if !ok {
				label = FallbackImageLabel
			}

			state := ""
			if inst.State != nil {
				state = aws.StringValue(inst.State.Name)
			}

			instances = append(instances, types.ManagedInstance{
				ID:            aws.StringValue(inst.InstanceId),
				Name:          nameTag(inst.Tags),
				SizeClass:     sizeClass,
				Tier:          types.TierForSize(sizeClass),
				ImageID:       imageID,
				ImageLabel:    label,
				State:         state,
				PublicAddress: aws.StringValue(inst.PublicDnsName),
			})
		}
	}
	return instances, nil
}

// NormalizeSizeClass rewrites an instance type into the canonical display
// family, keeping the size suffix. Types already in the family pass through
// unchanged. Display-only; the provider is never mutated.
func NormalizeSizeClass(instanceType string) string {
	if strings.HasPrefix(instanceType, canonicalSizeFamily) {
		return instanceType
	}
	parts := strings.SplitN(instanceType, ".", 2)
	if len(parts) != 2 {
		return instanceType
	}
	return canonicalSizeFamily + "." + parts[1]
}

func nameTag(tags []*ec2.Tag) string {
	for _, tag := range tags {
		if aws.StringValue(tag.Key) == "Name" {
			return aws.StringValue(tag.Value)
		}
	}
	return namePlaceholder
}
