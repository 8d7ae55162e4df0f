package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/keygen"
)

func TestFakeGenerator_Success(t *testing.T) {
	g := NewFakeGenerator()

	pair, err := g.Generate(keygen.Request{OutputPath: "u=s=z=passphrase=id_rsa"})

	require.NoError(t, err)
	assert.Equal(t, "u=s=z=passphrase=id_rsa", pair.PrivatePath)
	assert.Equal(t, "u=s=z=passphrase=id_rsa.pub", pair.PublicPath)
	assert.True(t, g.AssertGenerateCount(1))
	assert.True(t, g.Calls[0].Success)
}

func TestFakeGenerator_FailOnCall(t *testing.T) {
	g := NewFakeGenerator().SetFailOn(2, nil)

	_, err := g.Generate(keygen.Request{OutputPath: "first"})
	require.NoError(t, err)

	_, err = g.Generate(keygen.Request{OutputPath: "second"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrKeyGen))
	assert.Equal(t, 1, keygen.ExitCode(err))

	require.Len(t, g.Calls, 2)
	assert.True(t, g.Calls[0].Success)
	assert.False(t, g.Calls[1].Success)
}

func TestFakeGenerator_CustomFailError(t *testing.T) {
	custom := errors.New(errors.ErrEnvironment, "no tool", "")
	g := NewFakeGenerator().SetFailOn(1, custom)

	_, err := g.Generate(keygen.Request{OutputPath: "p"})

	assert.ErrorIs(t, err, custom)
}

func TestFakeGenerator_TouchFiles(t *testing.T) {
	dir := t.TempDir()
	g := NewFakeGenerator().SetTouchFiles()

	outputPath := filepath.Join(dir, "u=s=z=automation=id_rsa")
	pair, err := g.Generate(keygen.Request{OutputPath: outputPath})

	require.NoError(t, err)
	assert.FileExists(t, pair.PrivatePath)
	assert.FileExists(t, pair.PublicPath)

	info, err := os.Stat(pair.PrivatePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFakeGenerator_RecordsRequests(t *testing.T) {
	g := NewFakeGenerator()

	_, err := g.Generate(keygen.Request{OutputPath: "a", Passphrase: nil})
	require.NoError(t, err)
	_, err = g.Generate(keygen.Request{OutputPath: "b", Passphrase: keygen.EmptyPassphrase()})
	require.NoError(t, err)

	reqs := g.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "a", reqs[0].OutputPath)
	assert.Nil(t, reqs[0].Passphrase)
	require.NotNil(t, reqs[1].Passphrase)
	assert.Equal(t, "", *reqs[1].Passphrase)
}

func TestFakeGenerator_Reset(t *testing.T) {
	g := NewFakeGenerator().SetFailOn(1, nil)

	_, err := g.Generate(keygen.Request{OutputPath: "p"})
	require.Error(t, err)

	g.Reset()

	assert.Empty(t, g.Calls)
	_, err = g.Generate(keygen.Request{OutputPath: "p"})
	assert.NoError(t, err)
}
