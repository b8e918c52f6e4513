// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mcfpack-cli/internal/config"
)

// defaultConfigCUE is the file `config init` writes, mirroring the
// built-in defaults so a fresh file changes nothing until edited.
const defaultConfigCUE = `// mcfpack configuration
build: {
	dir:  "build"
	type: "Release"
	jobs: 0 // 0 = auto-detect
}
publish: {
	dir: ""
}
ui: {
	verbose: false
}
`

// newConfigCommand creates the `mcfpack config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mcfpack configuration",
		Long: `Manage mcfpack configuration.

Configuration is stored in:
  - Linux: ~/.config/mcfpack/config.cue
  - macOS: ~/Library/Application Support/mcfpack/config.cue
  - Windows: %APPDATA%\mcfpack\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	return cfgCmd
}

func showConfig() error {
	cfg := currentConfig()

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if loadedConfigPath != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), loadedConfigPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("build.dir"), valueStyle.Render(cfg.Build.Dir))
	fmt.Printf("%s: %s\n", keyStyle.Render("build.type"), valueStyle.Render(string(cfg.Build.Type)))
	fmt.Printf("%s: %s\n", keyStyle.Render("build.jobs"), valueStyle.Render(formatJobs(cfg)))
	fmt.Printf("%s: %s\n", keyStyle.Render("publish.dir"), valueStyle.Render(orUnset(cfg.Publish.Dir)))
	fmt.Printf("%s: %s\n", keyStyle.Render("ui.verbose"), valueStyle.Render(fmt.Sprintf("%t", cfg.UI.Verbose)))

	return nil
}

func formatJobs(cfg *config.Config) string {
	if cfg.Build.Jobs.IsAuto() {
		return "auto"
	}
	return fmt.Sprintf("%d", cfg.Build.Jobs)
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func initConfigFile() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("%s %s\n", WarningStyle.Render("Config file already exists:"), cfgPath)
		return nil
	}

	if err := os.WriteFile(cfgPath, []byte(defaultConfigCUE), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("%s %s\n", SuccessStyle.Render("Created config file:"), PathStyle.Render(cfgPath))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
