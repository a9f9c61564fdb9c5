package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Writes a configuration file with default settings so the embedding,
smtp and batch sections can be filled in. Refuses to overwrite an
existing file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := effectiveConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := effectiveConfigPath()
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}

// effectiveConfigPath resolves the --config flag or the default
// location.
func effectiveConfigPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.Path()
}
