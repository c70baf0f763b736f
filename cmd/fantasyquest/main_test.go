package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnvMissingFileIsSilent(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, loadDotEnv())
}

func TestLoadDotEnvReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FANTASYQUEST_DOTENV_TEST=yes\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FANTASYQUEST_DOTENV_TEST") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "yes", os.Getenv("FANTASYQUEST_DOTENV_TEST"))
}

func TestLoadDotEnvReportsUnreadableFile(t *testing.T) {
	// A directory named .env exists but cannot be parsed as a file.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))
	t.Chdir(dir)

	assert.Error(t, loadDotEnv())
}

func TestWriteTranscript(t *testing.T) {
	var buf bytes.Buffer
	writeTranscript(&buf, []string{"Game Over!", "", "Your adventure ends here, Kai..."})
	assert.Equal(t, "Game Over!\n\nYour adventure ends here, Kai...\n", buf.String())
}
