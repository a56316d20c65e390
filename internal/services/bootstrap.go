package services

import (
	"fmt"

	"github.com/dayfleet/dayfleet/internal/types"
)

// scriptKey selects a bootstrap script by protocol and OS family.
type scriptKey struct {
	protocol types.Protocol
	family   types.OSFamily
}

// bootstrapScripts maps (protocol, family) to the first-boot script that
// configures the requested remote-access path with the one-time credential.
// Pairs absent from the table yield an empty script: the machine still boots,
// but without the requested access path configured.
var bootstrapScripts = map[scriptKey]func(credential string) string{
	{types.ProtocolRDP, types.FamilyWindows}: func(credential string) string {
		return fmt.Sprintf(`<powershell>
net user Administrator "%s"
</powershell>
`, credential)
	},
	{types.ProtocolRDP, types.FamilyUbuntu}: func(credential string) string {
		return fmt.Sprintf(`#cloud-config
package_update: true
runcmd:
  - apt-get update
  - DEBIAN_FRONTEND=noninteractive apt-get install -y xrdp xfce4
  - systemctl enable xrdp
  - systemctl restart xrdp
  - echo "ubuntu:%s" | chpasswd
  - echo xfce4-session > /home/ubuntu/.xsession
  - chown ubuntu:ubuntu /home/ubuntu/.xsession
`, credential)
	},
	{types.ProtocolRDP, types.FamilyAmazonLinux}: func(credential string) string {
		return fmt.Sprintf(`#cloud-config
package_update: true
runcmd:
  - yum install -y epel-release
  - yum install -y xrdp tigervnc-server
  - systemctl enable xrdp
  - systemctl start xrdp
  - echo "ec2-user:%s" | chpasswd
  - sed -i 's/^PasswordAuthentication no/PasswordAuthentication yes/' /etc/ssh/sshd_config
  - systemctl restart sshd
  - echo "exec /usr/bin/xterm" > /home/ec2-user/.Xclients
  - chmod +x /home/ec2-user/.Xclients
  - chown ec2-user:ec2-user /home/ec2-user/.Xclients
`, credential)
	},
	{types.ProtocolSSH, types.FamilyUbuntu}: func(credential string) string {
		return sshPasswordScript("ubuntu", credential)
	},
	{types.ProtocolSSH, types.FamilyAmazonLinux}: func(credential string) string {
		return sshPasswordScript("ec2-user", credential)
	},
}

func sshPasswordScript(username, credential string) string {
	return fmt.Sprintf(`#cloud-config
ssh_pwauth: true
chpasswd:
  list: |
    %s:%s
  expire: false
`, username, credential)
}

// BootstrapScript returns the first-boot script for the given protocol and OS
// family, or an empty string for unmapped combinations.
func BootstrapScript(protocol types.Protocol, family types.OSFamily, credential string) string {
	script, ok := bootstrapScripts[scriptKey{protocol, family}]
	if !ok {
		return ""
	}
	return script(credential)
}

// DefaultUsername returns the OS-convention login for a provisioned machine.
func DefaultUsername(protocol types.Protocol, family types.OSFamily) string {
	if protocol == types.ProtocolRDP && family == types.FamilyWindows {
		return "Administrator"
	}
	if family == types.FamilyUbuntu {
		return "ubuntu"
	}
	return "ec2-user"
}
