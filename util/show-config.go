// Package util provides the show-config command logic.
package util

import (
	"fmt"

	"github.com/l10n-kit/po-sync-helper/config"
	"gopkg.in/yaml.v3"
)

// CmdShowConfig prints the merged configuration in YAML format.
func CmdShowConfig(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
