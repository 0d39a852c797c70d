package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoot_EnvOverride(t *testing.T) {
	t.Setenv("PALOG_ROOT", "/opt/palog")
	assert.Equal(t, "/opt/palog", DefaultRoot())
}

func TestDefaultRoot_Fallback(t *testing.T) {
	t.Setenv("PALOG_ROOT", "")
	assert.NotEmpty(t, DefaultRoot())
}

func TestFromRoot(t *testing.T) {
	p := FromRoot("root")
	assert.Equal(t, "root", p.Root)
	assert.Equal(t, filepath.Join("root", "palog.yaml"), p.ConfigPath)
	assert.Equal(t, filepath.Join("root", "logs"), p.LogsDir)
}

func TestEnsure(t *testing.T) {
	p := FromRoot(filepath.Join(t.TempDir(), "a", "b"))
	require.NoError(t, Ensure(p))

	for _, d := range []string{p.Root, p.LogsDir} {
		fi, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	}
	require.NoError(t, Ensure(p))
}
