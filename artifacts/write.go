package artifacts

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// Generated file names inside the install directory.
const (
	EnvFilename     = ".env"
	ComposeFilename = "docker-compose.yml"
)

// WriteFile overwrites path with data. Artifacts are always fully
// regenerated, never merged with previous content.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, mode)
}
