package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initConfigPath  string
	initConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runShowConfig,
}

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	RunE:  runInitConfig,
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(initConfigCmd)

	initConfigCmd.Flags().StringVar(&initConfigPath, "output", "config.yaml", "path of the file to write")
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "overwrite an existing file")
}

func runShowConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

const defaultConfig = `# Ontomapper Configuration

server:
  host: 0.0.0.0
  port: 5055
  read_timeout: 30s
  write_timeout: 30s
  shutdown_timeout: 10s
  debug: false

ontology:
  # .ttl/.turtle, .nt/.nq and .jsonld/.json are recognised by extension
  sources:
    - bfo-core.ttl
    - CommonCoreOntologiesMerged.ttl

logging:
  level: info
  format: json

security:
  rate_limit: 100
  max_upload_size: 32M
  allowed_origins:
    - "*"

uploads:
  dir: uploads

frontend:
  static_dir: csvui/dist

metrics:
  enabled: true
  path: /metrics
`

func runInitConfig(cmd *cobra.Command, args []string) error {
	if !initConfigForce {
		if _, err := os.Stat(initConfigPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initConfigPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	if err := os.WriteFile(initConfigPath, []byte(defaultConfig), 0644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", initConfigPath)
	return nil
}
