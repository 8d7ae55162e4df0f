package sshscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))
	return configPath
}

func TestParseConfigFile(t *testing.T) {
	configPath := writeConfig(t, `
Host build-box
    HostName build.example.com
    User ci
    Port 22
    IdentityFile ~/.ssh/alice@example.com=build.example.com=8af247255f409533f43c14cae2c07b97=automation=id_rsa

Host gpu-box
    HostName gpu.example.com
    User ubuntu

Host *
    ServerAliveInterval 60

Host work-*
    User workuser
`)

	hosts, err := ParseConfigFile(configPath)
	require.NoError(t, err)

	// Wildcards (*) and patterns (work-*) are excluded
	require.Len(t, hosts, 2)

	// Sorted alphabetically
	assert.Equal(t, "build-box", hosts[0].Alias)
	assert.Equal(t, "gpu-box", hosts[1].Alias)

	build := hosts[0]
	assert.Equal(t, "build.example.com", build.Hostname)
	assert.Equal(t, "ci", build.User)
	assert.Equal(t, "22", build.Port)
	assert.Contains(t, build.IdentityFile, "=automation=id_rsa")
	assert.NotContains(t, build.IdentityFile, "~", "tilde should be expanded")

	gpu := hosts[1]
	assert.Equal(t, "gpu.example.com", gpu.Hostname)
	assert.Equal(t, "ubuntu", gpu.User)
	assert.Equal(t, "", gpu.Port)
	assert.Equal(t, "", gpu.IdentityFile)
}

func TestParseConfigFile_NotExists(t *testing.T) {
	hosts, err := ParseConfigFile("/nonexistent/config")

	// Missing config means nothing to scan, not an error
	assert.NoError(t, err)
	assert.Nil(t, hosts)
}

func TestParseConfigFile_EmptyFile(t *testing.T) {
	hosts, err := ParseConfigFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestParseConfigFile_CommentsOnly(t *testing.T) {
	hosts, err := ParseConfigFile(writeConfig(t, `
# Managed by ansible
# Do not edit
`))
	require.NoError(t, err)
	assert.Empty(t, hosts)
}

func TestParseConfigFile_StopsAtMatch(t *testing.T) {
	hosts, err := ParseConfigFile(writeConfig(t, `
Host before-match
    HostName before.example.com

Match host *.example.com
    User matchuser

Host after-match
    HostName after.example.com
`))
	require.NoError(t, err)

	// Only the host before the Match directive is visible
	require.Len(t, hosts, 1)
	assert.Equal(t, "before-match", hosts[0].Alias)
}

func TestParseConfigFile_DuplicateHosts(t *testing.T) {
	hosts, err := ParseConfigFile(writeConfig(t, `
Host duplicate
    HostName first.example.com

Host duplicate
    HostName second.example.com
`))
	require.NoError(t, err)

	require.Len(t, hosts, 1)
	assert.Equal(t, "duplicate", hosts[0].Alias)
}

func TestParseConfigFile_MultiplePatterns(t *testing.T) {
	hosts, err := ParseConfigFile(writeConfig(t, `
Host server1 server2 server3
    User shareduser
    Port 2222
`))
	require.NoError(t, err)

	require.Len(t, hosts, 3)
	for _, h := range hosts {
		assert.Equal(t, "shareduser", h.User)
		assert.Equal(t, "2222", h.Port)
	}
}

func TestHostEntry_Description(t *testing.T) {
	tests := []struct {
		name     string
		entry    HostEntry
		expected string
	}{
		{
			name: "full entry",
			entry: HostEntry{
				Alias:    "build-box",
				Hostname: "build.example.com",
				User:     "ci",
				Port:     "2222",
			},
			expected: "build.example.com, user: ci, port: 2222",
		},
		{
			name: "default port omitted",
			entry: HostEntry{
				Alias:    "build-box",
				Hostname: "build.example.com",
				User:     "ci",
				Port:     "22",
			},
			expected: "build.example.com, user: ci",
		},
		{
			name: "hostname same as alias",
			entry: HostEntry{
				Alias:    "build-box",
				Hostname: "build-box",
				User:     "ci",
			},
			expected: "user: ci",
		},
		{
			name: "minimal entry",
			entry: HostEntry{
				Alias: "build-box",
			},
			expected: "build-box",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.Description())
		})
	}
}

func TestWithIdentityFile(t *testing.T) {
	hosts := []HostEntry{
		{Alias: "with-key", IdentityFile: "/keys/a=b=c=automation=id_rsa"},
		{Alias: "without-key"},
		{Alias: "another-key", IdentityFile: "/keys/id_ed25519"},
	}

	filtered := WithIdentityFile(hosts)

	require.Len(t, filtered, 2)
	assert.Equal(t, "with-key", filtered[0].Alias)
	assert.Equal(t, "another-key", filtered[1].Alias)
}

func TestWithIdentityFile_Empty(t *testing.T) {
	assert.Empty(t, WithIdentityFile(nil))
	assert.Empty(t, WithIdentityFile([]HostEntry{}))
}
