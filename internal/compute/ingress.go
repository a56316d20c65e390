package compute

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// remoteAccessPorts are opened for every provisioned machine regardless of the
// protocol finally registered: RDP, SSH, and VNC.
var remoteAccessPorts = []int64{3389, 22, 5900}

// Provider error codes meaning the rule is already in place.
const (
	errCodeDuplicatePermission = "InvalidPermission.Duplicate"
	errCodeMalformedPermission = "InvalidPermission.Malformed"
)

// AuthorizeRemoteAccess opens inbound TCP access on the remote-access port set
// for the given security group. Re-authorizing an already-open port is not an
// error, so the call is idempotent; any other provider error aborts.
func AuthorizeRemoteAccess(ctx context.Context, api EC2API, securityGroupID string) error {
	for _, port := range remoteAccessPorts {
		_, err := api.AuthorizeSecurityGroupIngressWithContext(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
			GroupId: aws.String(securityGroupID),
			IpPermissions: []*ec2.IpPermission{
				{
					IpProtocol: aws.String("tcp"),
					FromPort:   aws.Int64(port),
					ToPort:     aws.Int64(port),
					IpRanges:   []*ec2.IpRange{{CidrIp: aws.String("0.0.0.0/0")}},
				},
			},
		})
		if err != nil && !isIngressConflict(err) {
			return fmt.Errorf("failed to authorize ingress on port %d: %w", port, err)
		}
	}
	return nil
}

func isIngressConflict(err error) bool {
	aerr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	return aerr.Code() == errCodeDuplicatePermission || aerr.Code() == errCodeMalformedPermission
}
