package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"mtodo/cmd/mtodo/output"
	"mtodo/internal/infrastructure/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage mtodo configuration settings.

Configuration is stored in YAML format at:
  ~/.config/mtodo/config.yml

Examples:
  # Show current configuration
  mtodo config show

  # Edit config in editor
  mtodo config edit

  # Show config file location
  mtodo config path

  # Reset config to defaults
  mtodo config reset`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current configuration",
	Annotations: map[string]string{skipContainer: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newConfigLoader()
		if err != nil {
			return err
		}
		cfg, err := loader.Load()
		if err != nil {
			return err
		}

		// Text output falls back to YAML
		if formatter.IsText() {
			return yamlFormatter(cmd).Print(cfg)
		}
		return formatter.Print(cfg)
	},
}

// configEditCmd opens the config file in an editor
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit config in editor",
	Long: `Open the configuration file in your default editor.

The editor is determined by the EDITOR environment variable (default: vi).`,
	Annotations: map[string]string{skipContainer: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newConfigLoader()
		if err != nil {
			return err
		}

		// Make sure there is something to edit
		if _, err := loader.Load(); err != nil {
			return err
		}
		path := loader.GetConfigPath()

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		printer.Info("Opening config file: %s", path)

		editorCmd := exec.CommandContext(cmd.Context(), editor, path)
		editorCmd.Stdin = os.Stdin
		editorCmd.Stdout = os.Stdout
		editorCmd.Stderr = os.Stderr

		if err := editorCmd.Run(); err != nil {
			return fmt.Errorf("failed to run editor: %w", err)
		}

		printer.Success("Config file edited")
		return nil
	},
}

// configPathCmd shows the config file path
var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Show config file location",
	Annotations: map[string]string{skipContainer: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newConfigLoader()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.GetConfigPath())
		return nil
	},
}

// configResetCmd resets the config to defaults
var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset config to defaults",
	Long: `Reset the configuration to default values.

WARNING: This will overwrite your current configuration.

Examples:
  # Reset config (with confirmation)
  mtodo config reset

  # Reset without confirmation
  mtodo config reset --force`,
	Annotations: map[string]string{skipContainer: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		loader, err := newConfigLoader()
		if err != nil {
			return err
		}
		path := loader.GetConfigPath()

		// Confirm reset unless --force is used
		if !force {
			printer.Warning("About to reset configuration to defaults")
			printer.Warning("Current config: %s", path)
			fmt.Fprint(cmd.OutOrStdout(), "\nType 'yes' to confirm: ")

			var confirmation string
			fmt.Fscanln(cmd.InOrStdin(), &confirmation)

			if confirmation != "yes" {
				printer.Info("Reset cancelled")
				return nil
			}
		}

		if _, err := loader.Reset(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}

		printer.Success("Config reset: %s", path)
		return nil
	},
}

func yamlFormatter(cmd *cobra.Command) *output.Formatter {
	return output.NewFormatter(output.FormatYAML, cmd.OutOrStdout())
}

func newConfigLoader() (*config.Loader, error) {
	loader, err := config.NewLoaderFromPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader, nil
}

func init() {
	rootCmd.AddCommand(configCmd)

	// Add subcommands
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)

	// configResetCmd flags
	configResetCmd.Flags().Bool("force", false, "Reset without confirmation")
}
