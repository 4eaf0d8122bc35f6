package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/vista/internal/cli"
	"github.com/pthm/vista/internal/store"
	"github.com/pthm/vista/pkg/compiler"
	"github.com/pthm/vista/schema"
)

var (
	compileDefinition string
	compileShare      string
	compileDataset    string
	compileOutput     string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a view definition into SQL",
	Long:  `Compile a single view definition document into a SQL view statement.`,
	Example: `  # Compile a definition, writing SQL to stdout
  vista compile --definition views/orders.yaml

  # Compile against a remote share configuration
  vista compile --definition views/orders.yaml --share s3://shares/acme/share.yaml

  # Write the statement to a file
  vista compile --definition views/orders.yaml -o orders.sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		definition := compileDefinition
		if definition == "" {
			return cli.DefinitionError("a view definition is required (use --definition)", nil)
		}

		shareCfg, datasetID, err := loadShare(cmd.Context(), compileShare, compileDataset)
		if err != nil {
			return err
		}

		def, err := loadDefinition(cmd.Context(), definition)
		if err != nil {
			return err
		}

		statement, err := compiler.Compile(shareCfg, datasetID, def)
		if err != nil {
			return cli.DefinitionError(fmt.Sprintf("compiling view %s", def.Name), err)
		}

		if compileOutput == "" {
			fmt.Println(statement)
			return nil
		}

		if err := os.WriteFile(compileOutput, []byte(statement+"\n"), 0o644); err != nil {
			return cli.GeneralError("writing output", err)
		}
		if !quiet {
			fmt.Printf("Wrote %s\n", compileOutput)
		}
		return nil
	},
}

func init() {
	f := compileCmd.Flags()
	f.StringVar(&compileDefinition, "definition", "", "view definition location (path, URL, or s3://)")
	f.StringVar(&compileShare, "share", "", "share configuration location")
	f.StringVar(&compileDataset, "dataset", "", "dataset the view belongs to")
	f.StringVarP(&compileOutput, "output", "o", "", "write SQL to file instead of stdout")
}

// storeClient builds a document store client from the effective config.
func storeClient() *store.Client {
	return store.New(store.S3Options{
		AccessKey: cfg.Store.AccessKey,
		SecretKey: cfg.Store.SecretKey,
		Region:    cfg.Store.Region,
		Endpoint:  cfg.Store.Endpoint,
	}, nil)
}

// loadShare fetches and parses the share configuration, resolving the
// location and dataset with flag > config precedence.
func loadShare(ctx context.Context, shareFlag, datasetFlag string) (*schema.Config, string, error) {
	location := resolveString(shareFlag, cfg.Share)
	datasetID := resolveString(datasetFlag, cfg.Dataset)
	if datasetID == "" {
		return nil, "", cli.ConfigError("a dataset is required (use --dataset or set in config)", nil)
	}

	data, err := storeClient().Fetch(ctx, location)
	if err != nil {
		return nil, "", cli.StoreError(fmt.Sprintf("fetching share configuration %s", location), err)
	}

	shareCfg, err := schema.LoadConfig(data)
	if err != nil {
		return nil, "", cli.ConfigError(fmt.Sprintf("parsing share configuration %s", location), err)
	}
	return shareCfg, datasetID, nil
}

// loadDefinition fetches and parses a view definition document.
func loadDefinition(ctx context.Context, location string) (*schema.Definition, error) {
	data, err := storeClient().Fetch(ctx, location)
	if err != nil {
		return nil, cli.StoreError(fmt.Sprintf("fetching definition %s", location), err)
	}

	def, err := schema.Load(data)
	if err != nil {
		return nil, cli.DefinitionError(fmt.Sprintf("parsing definition %s", location), err)
	}
	return def, nil
}
