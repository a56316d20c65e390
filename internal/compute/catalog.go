package compute

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/dayfleet/dayfleet/internal/logger"
	"github.com/dayfleet/dayfleet/internal/types"
)

// catalogEntry describes one image registry query. Family and desktop support
// are declared here rather than inferred from the label text, so protocol and
// bootstrap dispatch stay table-driven.
type catalogEntry struct {
	owner           string
	namePattern     string
	label           string
	family          types.OSFamily
	supportsDesktop bool
}

// catalogEntries is the fixed boot image catalog.
var catalogEntries = []catalogEntry{
	{"amazon", "amzn2-ami-hvm-*-x86_64-gp2", "Amazon Linux 2", types.FamilyAmazonLinux, false},
	{"aws-marketplace", "*GUI Desktop*", "Amazon Linux 2 GUI Desktop (RDP)", types.FamilyAmazonLinux, true},
	{"099720109477", "ubuntu/images/hvm-ssd/ubuntu-jammy-22.04-amd64-server-*", "Ubuntu 22.04 LTS", types.FamilyUbuntu, false},
	{"aws-marketplace", "*Ubuntu Desktop*RDP*", "Ubuntu Desktop (RDP)", types.FamilyUbuntu, true},
	{"amazon", "Windows_Server-2022-English-Full-Base-*", "Windows Server 2022", types.FamilyWindows, true},
}

// ResolveCatalog queries the provider's image registry for every catalog entry
// and returns the newest matching image per entry, re-labeled for display.
// Entries with no match are dropped. A registry error for one entry does not
// abort the others; the failed entry is logged and skipped, so the result may
// be partial. Results are never cached.
func ResolveCatalog(ctx context.Context, api EC2API) []types.BootImage {
	images := make([]types.BootImage, 0, len(catalogEntries))
	for _, entry := range catalogEntries {
		image, err := resolveLatestImage(ctx, api, entry)
		if err != nil {
			logger.WarnWithFields("failed to resolve catalog image", map[string]interface{}{
				"label": entry.label,
				"error": err.Error(),
			})
			continue
		}
		if image != nil {
			images = append(images, *image)
		}
	}
	return images
}

func resolveLatestImage(ctx context.Context, api EC2API, entry catalogEntry) (*types.BootImage, error) {
	out, err := api.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Owners: []*string{aws.String(entry.owner)},
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("name"),
				Values: []*string{aws.String(entry.namePattern)},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Images) == 0 {
		return nil, nil
	}

	// CreationDate is RFC 3339, so lexical order is chronological. The stable
	// sort keeps registry enumeration order for identical timestamps.
	images := out.Images
	sort.SliceStable(images, func(i, j int) bool {
		return aws.StringValue(images[i].CreationDate) > aws.StringValue(images[j].CreationDate)
	})

	return &types.BootImage{
		ID:              aws.StringValue(images[0].ImageId),
		Label:           entry.label,
		Family:          entry.family,
		SupportsDesktop: entry.supportsDesktop,
	}, nil
}
