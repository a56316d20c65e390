package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dayfleet/dayfleet/internal/types"
)

func TestBootstrapScriptMapping(t *testing.T) {
	tests := []struct {
		name     string
		protocol types.Protocol
		family   types.OSFamily
		contains []string
	}{
		{
			name:     "windows rdp sets the administrator password",
			protocol: types.ProtocolRDP,
			family:   types.FamilyWindows,
			contains: []string{"<powershell>", `net user Administrator "s3cret!"`},
		},
		{
			name:     "ubuntu rdp installs a desktop",
			protocol: types.ProtocolRDP,
			family:   types.FamilyUbuntu,
			contains: []string{"#cloud-config", "xrdp xfce4", "ubuntu:s3cret!", "xfce4-session"},
		},
		{
			name:     "amazon linux rdp installs a desktop",
			protocol: types.ProtocolRDP,
			family:   types.FamilyAmazonLinux,
			contains: []string{"#cloud-config", "xrdp tigervnc-server", "ec2-user:s3cret!", "PasswordAuthentication"},
		},
		{
			name:     "ubuntu ssh enables password auth",
			protocol: types.ProtocolSSH,
			family:   types.FamilyUbuntu,
			contains: []string{"ssh_pwauth: true", "ubuntu:s3cret!"},
		},
		{
			name:     "amazon linux ssh enables password auth",
			protocol: types.ProtocolSSH,
			family:   types.FamilyAmazonLinux,
			contains: []string{"ssh_pwauth: true", "ec2-user:s3cret!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := BootstrapScript(tt.protocol, tt.family, "s3cret!")
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(script, want), "missing %q in script:\n%s", want, script)
			}
		})
	}
}

func TestBootstrapScriptUnmappedPairsAreEmpty(t *testing.T) {
	unmapped := []struct {
		protocol types.Protocol
		family   types.OSFamily
	}{
		{types.ProtocolSSH, types.FamilyWindows},
		{types.ProtocolSSH, types.FamilyOther},
		{types.ProtocolRDP, types.FamilyOther},
		{types.ProtocolVNC, types.FamilyUbuntu},
		{types.ProtocolVNC, types.FamilyWindows},
	}
	for _, tt := range unmapped {
		assert.Empty(t, BootstrapScript(tt.protocol, tt.family, "s3cret!"), "%s/%s", tt.protocol, tt.family)
	}
}

func TestDefaultUsername(t *testing.T) {
	assert.Equal(t, "Administrator", DefaultUsername(types.ProtocolRDP, types.FamilyWindows))
	assert.Equal(t, "ubuntu", DefaultUsername(types.ProtocolRDP, types.FamilyUbuntu))
	assert.Equal(t, "ubuntu", DefaultUsername(types.ProtocolSSH, types.FamilyUbuntu))
	assert.Equal(t, "ec2-user", DefaultUsername(types.ProtocolSSH, types.FamilyAmazonLinux))
	// ssh to a Windows image still gets the generic default
	assert.Equal(t, "ec2-user", DefaultUsername(types.ProtocolSSH, types.FamilyWindows))
}
