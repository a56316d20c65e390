// Package types provides type definitions for the application
package types

import (
	"encoding/json"
	"fmt"
)

// SizingTier is the user-facing cost/performance category for a machine.
// Each tier maps to exactly one EC2 instance type at launch; the reverse
// derivation from a raw instance type is coarser (see TierForSize).
type SizingTier int

const (
	TierBasic SizingTier = iota
	TierStandard
	TierPremium
)

var tierNames = []string{"Basic", "Standard", "Premium"}

func (t SizingTier) String() string {
	if t < TierBasic || t > TierPremium {
		return "Standard"
	}
	return tierNames[t]
}

// ParseTier parses a tier name. Matching is exact; the API contract uses the
// capitalized display names.
func ParseTier(str string) (SizingTier, error) {
	for i, name := range tierNames {
		if name == str {
			return SizingTier(i), nil
		}
	}
	return TierStandard, fmt.Errorf("invalid sizing tier: %q", str)
}

// MarshalJSON implements json.Marshaler
func (t SizingTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *SizingTier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	tier, err := ParseTier(str)
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// InstanceTypeForTier maps a sizing tier to the EC2 instance type launched for it.
func InstanceTypeForTier(t SizingTier) string {
	switch t {
	case TierBasic:
		return "t3.micro"
	case TierPremium:
		return "t3a.large"
	default:
		return "t3.medium"
	}
}

// TierForSize derives the display tier from an instance type's size suffix
// (the part after the dot). Unrecognized suffixes fall back to Standard.
func TierForSize(instanceType string) SizingTier {
	switch sizeSuffix(instanceType) {
	case "nano", "micro", "small":
		return TierBasic
	case "medium":
		return TierStandard
	case "large", "xlarge", "2xlarge", "4xlarge", "8xlarge":
		return TierPremium
	default:
		return TierStandard
	}
}

func sizeSuffix(instanceType string) string {
	for i := 0; i < len(instanceType); i++ {
		if instanceType[i] == '.' {
			return instanceType[i+1:]
		}
	}
	return ""
}

// OSFamily identifies the operating system family of a boot image. It is
// attached at catalog resolution time so downstream dispatch does not depend
// on label substrings.
type OSFamily string

const (
	FamilyWindows     OSFamily = "windows"
	FamilyUbuntu      OSFamily = "ubuntu"
	FamilyAmazonLinux OSFamily = "amazon-linux"
	FamilyOther       OSFamily = "other"
)

// Protocol is the remote-access protocol registered with the gateway.
type Protocol string

const (
	ProtocolRDP Protocol = "rdp"
	ProtocolSSH Protocol = "ssh"
	ProtocolVNC Protocol = "vnc"
)

// Valid reports whether p is a recognized protocol.
func (p Protocol) Valid() bool {
	switch p {
	case ProtocolRDP, ProtocolSSH, ProtocolVNC:
		return true
	}
	return false
}

// Port returns the gateway port conventionally used for the protocol.
func (p Protocol) Port() int {
	switch p {
	case ProtocolRDP:
		return 3389
	case ProtocolSSH:
		return 22
	default:
		return 5900
	}
}

// BootImage is a launchable machine image resolved from the provider's
// registry. The ID may change between two resolutions of the same label as
// providers publish newer images.
type BootImage struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Family          OSFamily `json:"family"`
	SupportsDesktop bool     `json:"supports_desktop"`
}

// ManagedInstance is a provider-owned compute instance annotated with the
// display metadata derived by the fleet normalizer. The provider remains the
// source of truth for State and PublicAddress; nothing here is cached.
type ManagedInstance struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	SizeClass     string     `json:"size_class"`
	Tier          SizingTier `json:"tier"`
	ImageID       string     `json:"image_id"`
	ImageLabel    string     `json:"image_label"`
	State         string     `json:"state"`
	PublicAddress string     `json:"public_address,omitempty"`
}
