package cmd

import (
	"fmt"

	"github.com/easyhired/resumer/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file with placeholder values.

Example:
  resumer init
  resumer init --config ./config.json`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to initialize config")
		return err
	}

	fmt.Println("Config file created. Edit it to set your Gemini API key and JWT secret.")
	return err
}
