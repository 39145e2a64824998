package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// AppName namespaces the per-user override directory.
const AppName = "pipescroller"

// Dir is the working-directory override checked before the user config dir.
var Dir = "prefabs"

// Load returns the named spec from the first place that has it: the
// working-directory prefabs/ folder, the user's XDG config dir, then the
// embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	if p, ok := userPrefabPath(clean); ok {
		if data, err := os.ReadFile(p); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

// UserDir is where per-user overrides live. It may not exist.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, AppName, "prefabs")
}

func userPrefabPath(clean string) (string, bool) {
	p, err := xdg.SearchConfigFile(path.Join(AppName, "prefabs", clean))
	if err != nil {
		return "", false
	}
	return p, true
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

// WatchDirs lists the override directories that exist on disk.
func WatchDirs() []string {
	var dirs []string
	for _, d := range []string{Dir, UserDir()} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
