package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssprune.yaml config file",
	Long:  `Create a .cssprune.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssprune.yaml"); err == nil && !force {
			return fmt.Errorf(".cssprune.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssprune.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssprune.yaml")
		return nil
	},
}

const defaultConfig = `# cssprune configuration
# Docs: https://github.com/yacobolo/cssprune

# Shared settings
verbose: false

# Scan settings
scan:
  content:
    - "web/**/*.{html,templ,go}"
  stylesheet: dist/styles.css
  output-format: text      # text | json
  concurrency: 0           # 0 = GOMAXPROCS
  strict: false
  watch: false
  # Inline content scanned alongside matched files:
  # raw:
  #   - content: '<div class="btn"></div>'
  #     extension: html

# Classes kept regardless of scan results. Pattern rules match base
# names only; variants are cross-producted against matches.
safelist: []
#  - bg-red-500
#  - pattern: "bg-(red|green)-(100|200)"
#    variants: [hover]
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
