package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keymint/keymint/internal/errors"
)

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_FutureVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = CurrentConfigVersion + 1

	err := Validate(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "future")
}

func TestValidate_Algorithm(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		bits      int
		wantErr   bool
	}{
		{name: "rsa with default bits", algorithm: "rsa", bits: 4096},
		{name: "ed25519", algorithm: "ed25519"},
		{name: "ecdsa", algorithm: "ecdsa"},
		{name: "empty algorithm allowed", algorithm: ""},
		{name: "unknown algorithm", algorithm: "dsa", wantErr: true},
		{name: "rsa bits too small", algorithm: "rsa", bits: 512, wantErr: true},
		{name: "rsa bits zero uses tool default", algorithm: "rsa", bits: 0},
		{name: "negative bits", algorithm: "rsa", bits: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = tt.algorithm
			cfg.Bits = tt.bits

			err := Validate(cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_EmptyTool(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tool = ""

	err := Validate(cfg)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{color: "auto"},
		{color: "always"},
		{color: "never"},
		{color: ""},
		{color: "rainbow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("color "+tt.color, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output.Color = tt.color

			err := Validate(cfg)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
