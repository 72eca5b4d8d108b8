package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lanternworks/entrygen/internal/fsys"
)

// ConfigFile is the optional per-project configuration file name.
const ConfigFile = "entrygen.yaml"

// Config customizes the default layout conventions. Zero values fall
// back to the conventional defaults.
type Config struct {
	Name             string   `yaml:"name"`
	SrcDir           string   `yaml:"srcDir"`
	OutDir           string   `yaml:"outDir"`
	AssetsDir        string   `yaml:"assetsDir"`
	MountExt         string   `yaml:"mountExt"`
	ModuleExtensions []string `yaml:"moduleExtensions"`
	UIExtensions     []string `yaml:"uiExtensions"`
	TemplateRoot     string   `yaml:"templateRoot"`
}

// LoadConfig reads entrygen.yaml from the project root. A missing file
// is not an error; the zero Config is returned and defaults apply.
func LoadConfig(fs fsys.FS, root string) (Config, error) {
	path := filepath.Join(root, ConfigFile)

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) withDefaults(root string) Config {
	if c.Name == "" {
		c.Name = deriveProjectName(root)
	}
	if c.SrcDir == "" {
		c.SrcDir = "src"
	}
	if c.OutDir == "" {
		c.OutDir = ".entrygen"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "public"
	}
	if c.MountExt == "" {
		c.MountExt = ".mount.js"
	}
	if len(c.ModuleExtensions) == 0 {
		c.ModuleExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".svelte", ".vue"}
	}
	if len(c.UIExtensions) == 0 {
		c.UIExtensions = []string{".tsx", ".jsx", ".svelte", ".vue"}
	}
	return c
}

func deriveProjectName(root string) string {
	base := filepath.Base(root)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "extension"
	}
	return base
}
