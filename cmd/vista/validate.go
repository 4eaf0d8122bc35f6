package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/vista/internal/cli"
	"github.com/pthm/vista/schema"
)

var (
	validateDefinitions string
	validateShare       string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate share and view definition documents",
	Long: `Validate that the share configuration and every view definition in the
definitions directory are well formed, without compiling them.`,
	Example: `  # Validate using config file settings
  vista validate

  # Validate a specific definitions directory
  vista validate --definitions-dir shares/acme/views`,
	RunE: func(cmd *cobra.Command, args []string) error {
		definitionsDir := resolveString(validateDefinitions, cfg.Definitions)
		shareLocation := resolveString(validateShare, cfg.Share)

		data, err := storeClient().Fetch(cmd.Context(), shareLocation)
		if err != nil {
			return cli.StoreError(fmt.Sprintf("fetching share configuration %s", shareLocation), err)
		}
		if _, err := schema.LoadConfig(data); err != nil {
			return cli.ConfigError(fmt.Sprintf("share configuration %s", shareLocation), err)
		}

		paths, err := definitionFiles(definitionsDir)
		if err != nil {
			return cli.DefinitionError(fmt.Sprintf("reading definitions from %s", definitionsDir), err)
		}

		for _, path := range paths {
			if _, err := schema.LoadFile(path); err != nil {
				return cli.DefinitionError(fmt.Sprintf("definition %s", path), err)
			}
		}

		if !quiet {
			fmt.Printf("Share configuration and %d definitions are valid.\n", len(paths))
		}
		return nil
	},
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateDefinitions, "definitions-dir", "", "directory containing view definitions")
	f.StringVar(&validateShare, "share", "", "share configuration location")
}
