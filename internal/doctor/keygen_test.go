package doctor

import (
	"os/exec"
	"strings"
	"testing"
)

func TestKeygenBinaryCheck(t *testing.T) {
	t.Run("name and category", func(t *testing.T) {
		check := &KeygenBinaryCheck{}
		if check.Name() != "keygen_binary" {
			t.Errorf("expected name 'keygen_binary', got %s", check.Name())
		}
		if check.Category() != "KEYGEN" {
			t.Errorf("expected category 'KEYGEN', got %s", check.Category())
		}
	})

	t.Run("tool present", func(t *testing.T) {
		// sh is on PATH everywhere the tests run
		check := &KeygenBinaryCheck{Tool: "sh"}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
		if !strings.Contains(result.Message, "sh found") {
			t.Errorf("expected message to report the resolved path, got %q", result.Message)
		}
	})

	t.Run("tool missing", func(t *testing.T) {
		check := &KeygenBinaryCheck{Tool: "keymint-no-such-binary"}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
		if result.Suggestion == "" {
			t.Error("expected an install suggestion")
		}
	})

	t.Run("defaults to ssh-keygen", func(t *testing.T) {
		check := &KeygenBinaryCheck{}
		result := check.Run()

		// Depends on whether OpenSSH is installed on the test machine
		if _, err := exec.LookPath("ssh-keygen"); err != nil {
			if result.Status != StatusFail {
				t.Errorf("expected StatusFail without ssh-keygen, got %v", result.Status)
			}
		} else {
			if result.Status != StatusPass {
				t.Errorf("expected StatusPass with ssh-keygen installed, got %v: %s", result.Status, result.Message)
			}
		}
	})

	t.Run("fix returns nil", func(t *testing.T) {
		check := &KeygenBinaryCheck{}
		if err := check.Fix(); err != nil {
			t.Errorf("expected Fix() to return nil, got %v", err)
		}
	})
}

func TestOpenSSHVersionCheck(t *testing.T) {
	check := &OpenSSHVersionCheck{}

	t.Run("name and category", func(t *testing.T) {
		if check.Name() != "openssh_version" {
			t.Errorf("expected name 'openssh_version', got %s", check.Name())
		}
		if check.Category() != "KEYGEN" {
			t.Errorf("expected category 'KEYGEN', got %s", check.Category())
		}
	})

	t.Run("run", func(t *testing.T) {
		result := check.Run()

		if _, err := exec.LookPath("ssh"); err != nil {
			if result.Status != StatusWarn {
				t.Errorf("expected StatusWarn without ssh, got %v", result.Status)
			}
		} else {
			if result.Status != StatusPass {
				t.Errorf("expected StatusPass with ssh installed, got %v: %s", result.Status, result.Message)
			}
		}
	})
}

func TestParseOpenSSHVersion(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{
			name:     "ubuntu banner",
			output:   "OpenSSH_9.6p1 Ubuntu-3ubuntu13, OpenSSL 3.0.13 30 Jan 2024",
			expected: "9.6p1",
		},
		{
			name:     "macos banner",
			output:   "OpenSSH_9.7p1, LibreSSL 3.3.6",
			expected: "9.7p1",
		},
		{
			name:     "plain version",
			output:   "OpenSSH_8.4 something",
			expected: "8.4",
		},
		{
			name:     "no version found",
			output:   "some other output",
			expected: "unknown",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseOpenSSHVersion(tc.output); got != tc.expected {
				t.Errorf("parseOpenSSHVersion() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestNewKeygenChecks(t *testing.T) {
	checks := NewKeygenChecks("ssh-keygen")

	if len(checks) != 2 {
		t.Errorf("expected 2 keygen checks, got %d", len(checks))
	}

	for _, check := range checks {
		if check.Category() != "KEYGEN" {
			t.Errorf("expected KEYGEN category, got %s", check.Category())
		}
	}
}
