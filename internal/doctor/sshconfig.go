package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keymint/keymint/internal/naming"
	"github.com/keymint/keymint/pkg/sshscan"
)

// SSHConfigCheck scans ~/.ssh/config for IdentityFile entries that point at
// minted key files, so the operator can see which hosts already use them.
type SSHConfigCheck struct {
	ConfigPath string // Override for tests; empty means ~/.ssh/config
}

func (c *SSHConfigCheck) Name() string     { return "ssh_config" }
func (c *SSHConfigCheck) Category() string { return "SSHCONFIG" }

func (c *SSHConfigCheck) Run() CheckResult {
	path := c.ConfigPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: "No home directory, skipping SSH config scan",
			}
		}
		path = filepath.Join(home, ".ssh", "config")
	}

	hosts, err := sshscan.ParseConfigFile(path)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Couldn't parse SSH config: %v", err),
			Suggestion: "Check the syntax in " + path,
		}
	}

	if len(hosts) == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No SSH config host entries to scan",
		}
	}

	minted := 0
	for _, h := range sshscan.WithIdentityFile(hosts) {
		if _, err := naming.Parse(h.IdentityFile); err == nil {
			minted++
		}
	}

	msg := fmt.Sprintf("%d host%s in SSH config", len(hosts), pluralize(len(hosts)))
	if minted > 0 {
		msg += fmt.Sprintf(", %d using minted key%s", minted, pluralize(minted))
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

func (c *SSHConfigCheck) Fix() error {
	return nil
}

// NewSSHConfigChecks creates the SSH config scan check.
func NewSSHConfigChecks() []Check {
	return []Check{
		&SSHConfigCheck{},
	}
}
