package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DiskDir is where editable copies of the embedded prefabs live, relative to
// the working directory. A file there shadows its embedded twin.
const DiskDir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a tuning spec by file name.
func Load(name string) ([]byte, error) {
	return readShadowed(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript returns a ground script. name may be given bare, under
// scripts/ or under prefabs/scripts/.
func LoadScript(name string) ([]byte, error) {
	base := strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	return readShadowed(ScriptsFS, path.Join("scripts", base))
}

// ModTime reports when the disk copy of a prefab was last written. It is
// false when only the embedded copy exists.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func readShadowed(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

func cleanPrefabPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "./")
	return strings.TrimPrefix(s, DiskDir+"/")
}

func diskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
