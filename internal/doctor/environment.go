package doctor

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HostnameCheck verifies the local host name resolves, since it feeds the
// default system identifier.
type HostnameCheck struct{}

func (c *HostnameCheck) Name() string     { return "hostname" }
func (c *HostnameCheck) Category() string { return "ENVIRONMENT" }

func (c *HostnameCheck) Run() CheckResult {
	name, err := os.Hostname()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Hostname lookup failed: %v", err),
			Suggestion: "Pass the system identifier explicitly: keymint <user> <system>",
		}
	}

	if name == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Hostname is empty",
			Suggestion: "Set a host name, or pass the system identifier explicitly",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Hostname: %s", name),
	}
}

func (c *HostnameCheck) Fix() error {
	return nil
}

// EntropyCheck verifies the random source can produce the 16 bytes a ZID
// needs.
type EntropyCheck struct{}

func (c *EntropyCheck) Name() string     { return "entropy" }
func (c *EntropyCheck) Category() string { return "ENVIRONMENT" }

func (c *EntropyCheck) Run() CheckResult {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Random source unavailable: %v", err),
			Suggestion: "Check /dev/urandom is readable",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Random source OK",
	}
}

func (c *EntropyCheck) Fix() error {
	return nil
}

// OutDirCheck verifies the configured output directory is writable.
type OutDirCheck struct {
	Dir string
}

func (c *OutDirCheck) Name() string     { return "out_dir" }
func (c *OutDirCheck) Category() string { return "ENVIRONMENT" }

func (c *OutDirCheck) Run() CheckResult {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Output directory doesn't exist: %s", dir),
			Suggestion: "It will be created on the first run, or create it now: mkdir -p " + dir,
			Fixable:    true,
		}
	}
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Can't access output directory: %v", err),
			Suggestion: "Check permissions on " + dir,
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Output path is not a directory: %s", dir),
			Suggestion: "Point out_dir at a directory",
		}
	}

	// Probe writability with a throwaway file
	probe, err := os.CreateTemp(dir, ".keymint-doctor-*")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Output directory not writable: %s", dir),
			Suggestion: "Fix: chmod u+w " + dir,
		}
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Output directory writable: %s", dir),
	}
}

func (c *OutDirCheck) Fix() error {
	dir := c.Dir
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Clean(dir), err)
		}
	}
	return nil
}

// NewEnvironmentChecks creates the environment capability checks.
func NewEnvironmentChecks(outDir string) []Check {
	return []Check{
		&HostnameCheck{},
		&EntropyCheck{},
		&OutDirCheck{Dir: outDir},
	}
}
