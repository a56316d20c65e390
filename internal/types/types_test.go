package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		input     string
		want      SizingTier
		wantError bool
	}{
		{"Basic", TierBasic, false},
		{"Standard", TierStandard, false},
		{"Premium", TierPremium, false},
		{"basic", TierStandard, true},
		{"", TierStandard, true},
		{"Gold", TierStandard, true},
	}
	for _, tt := range tests {
		tier, err := ParseTier(tt.input)
		if tt.wantError {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, tier, tt.input)
	}
}

func TestInstanceTypeForTier(t *testing.T) {
	assert.Equal(t, "t3.micro", InstanceTypeForTier(TierBasic))
	assert.Equal(t, "t3.medium", InstanceTypeForTier(TierStandard))
	assert.Equal(t, "t3a.large", InstanceTypeForTier(TierPremium))
}

func TestTierForSize(t *testing.T) {
	tests := []struct {
		instanceType string
		want         SizingTier
	}{
		{"t3.nano", TierBasic},
		{"t3.micro", TierBasic},
		{"t3.small", TierBasic},
		{"t3.medium", TierStandard},
		{"t3.large", TierPremium},
		{"t3.xlarge", TierPremium},
		{"t3.2xlarge", TierPremium},
		{"t3.4xlarge", TierPremium},
		{"t3.8xlarge", TierPremium},
		// unrecognized suffixes fall back to Standard
		{"t3.metal", TierStandard},
		{"t3.16xlarge", TierStandard},
		{"m5", TierStandard},
		{"", TierStandard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForSize(tt.instanceType), tt.instanceType)
	}
}

func TestProtocolPort(t *testing.T) {
	assert.Equal(t, 3389, ProtocolRDP.Port())
	assert.Equal(t, 22, ProtocolSSH.Port())
	assert.Equal(t, 5900, ProtocolVNC.Port())
}

func TestProtocolValid(t *testing.T) {
	assert.True(t, ProtocolRDP.Valid())
	assert.True(t, ProtocolSSH.Valid())
	assert.True(t, ProtocolVNC.Valid())
	assert.False(t, Protocol("telnet").Valid())
	assert.False(t, Protocol("").Valid())
}

func TestProvisionRequestValidate(t *testing.T) {
	valid := ProvisionRequest{ImageID: "ami-1", Name: "day-1", Tier: "Standard"}
	assert.NoError(t, valid.Validate())

	tests := []ProvisionRequest{
		{Name: "day-1", Tier: "Standard"},
		{ImageID: "ami-1", Tier: "Standard"},
		{ImageID: "ami-1", Name: "day-1", Tier: "Gold"},
		{ImageID: "ami-1", Name: "day-1", Tier: "Standard", Protocol: "telnet"},
	}
	for _, req := range tests {
		err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	}
}
