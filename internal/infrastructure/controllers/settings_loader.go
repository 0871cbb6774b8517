package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/thutor/internal/domain/entities"
)

// loadSettings reads the file named by --config, or the first one found on
// the search path. Either way an absent file is entities.ErrConfigurationMissing.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		if cfgPath, err = entities.FindConfigFile(); err != nil {
			return nil, err
		}
	}

	logger.Debugf("Using config file: %s", cfgPath)
	return entities.NewSettings(cfgPath)
}
