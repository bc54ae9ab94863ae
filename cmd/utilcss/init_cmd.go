package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long:  `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".utilcss.yaml"); err == nil && !force {
			return fmt.Errorf(".utilcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".utilcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .utilcss.yaml")
		return nil
	},
}

const defaultConfig = `# utilcss configuration
# Every key can be overridden with UTILCSS_<KEY> (e.g. UTILCSS_TOKENS_CSS)
# or with the matching command line flag.

verbose: false

# Files scanned for classes
inputs:
  - "**/*.html"
  - "**/*.templ"

output: static/utilities.css   # empty writes to stdout
tokens-css: static/tokens.css  # used tokens only; empty to skip
report: text                   # text | json
minify: true
strict: false

# Extra design tokens (TOML, one table per category)
# tokens: design/tokens.toml

# Components bundle classes under a new rule name: btn, btn(ghost), btn(ghost/lg)
components:
  btn:
    base: "hbox(pack) r(md) px(md) py(sm)"
    variants:
      primary: "bg(blue-500) c(white)"
      ghost: "bg(transparent) c(blue-500)"
    sizes:
      sm: "text(sm)"
      lg: "text(lg)"
    defaults:
      variant: primary
      size: sm
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
