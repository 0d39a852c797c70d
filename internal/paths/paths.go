package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds resolved locations for the CLI's files.
type Paths struct {
	Root       string
	ConfigPath string
	LogsDir    string
}

// DefaultRoot returns the base data directory. PALOG_ROOT overrides the default.
func DefaultRoot() string {
	if env := os.Getenv("PALOG_ROOT"); env != "" {
		return env
	}
	if runtime.GOOS == "windows" {
		return `C:\ProgramData\Palog`
	}
	return filepath.Join(".", "var", "palog")
}

// FromRoot constructs the standard layout under a given root.
func FromRoot(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, "palog.yaml"),
		LogsDir:    filepath.Join(root, "logs"),
	}
}

// Ensure creates required directories if missing.
func Ensure(p Paths) error {
	for _, d := range []string{p.Root, p.LogsDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
