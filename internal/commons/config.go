package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/ChoneChone22/bambite-storefront/internal/config"
)

// LoadConfigFile overlays a yaml config file on top of cfg. Used when
// CONFIG_PATH is set; env-derived values win for anything the file omits.
func LoadConfigFile(path string, cfg *config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}
