package doctor

import (
	"fmt"
	"os/exec"
	"regexp"
)

// KeygenBinaryCheck verifies the key-generation tool is on PATH.
type KeygenBinaryCheck struct {
	Tool string // Binary name from config, e.g. "ssh-keygen"
}

func (c *KeygenBinaryCheck) Name() string     { return "keygen_binary" }
func (c *KeygenBinaryCheck) Category() string { return "KEYGEN" }

func (c *KeygenBinaryCheck) Run() CheckResult {
	tool := c.Tool
	if tool == "" {
		tool = "ssh-keygen"
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("'%s' not found in PATH", tool),
			Suggestion: "Install the OpenSSH client tools: apt install openssh-client (Linux) or xcode-select --install (macOS)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%s found: %s", tool, path),
	}
}

func (c *KeygenBinaryCheck) Fix() error {
	return nil // System package installation is out of scope
}

// OpenSSHVersionCheck reports the installed OpenSSH version.
// ssh-keygen has no version flag, so the companion ssh binary is asked.
type OpenSSHVersionCheck struct{}

func (c *OpenSSHVersionCheck) Name() string     { return "openssh_version" }
func (c *OpenSSHVersionCheck) Category() string { return "KEYGEN" }

func (c *OpenSSHVersionCheck) Run() CheckResult {
	path, err := exec.LookPath("ssh")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "ssh not found, can't determine OpenSSH version",
			Suggestion: "Install the full OpenSSH client package",
		}
	}

	// ssh -V prints the version banner on stderr
	output, err := exec.Command(path, "-V").CombinedOutput()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "OpenSSH found (version unknown)",
		}
	}

	version := parseOpenSSHVersion(string(output))
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("OpenSSH %s", version),
	}
}

func (c *OpenSSHVersionCheck) Fix() error {
	return nil
}

// parseOpenSSHVersion extracts the version from an ssh -V banner.
func parseOpenSSHVersion(output string) string {
	// Banner looks like: "OpenSSH_9.6p1 Ubuntu-3ubuntu13, OpenSSL 3.0.13 ..."
	re := regexp.MustCompile(`OpenSSH_([0-9]+\.[0-9]+[^\s,]*)`)
	matches := re.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return "unknown"
}

// NewKeygenChecks creates the key-generation tool checks.
func NewKeygenChecks(tool string) []Check {
	return []Check{
		&KeygenBinaryCheck{Tool: tool},
		&OpenSSHVersionCheck{},
	}
}
