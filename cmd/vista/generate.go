package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/vista/internal/cli"
	"github.com/pthm/vista/pkg/compiler"
	"github.com/pthm/vista/schema"
)

var (
	generateDefinitions string
	generateShare       string
	generateDataset     string
	generateOutputDir   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile all view definitions in a directory",
	Long: `Compile every view definition document in a directory into SQL view
statements, one .sql file per view.`,
	Example: `  # Compile all definitions under views/ into generated/
  vista generate

  # Compile a specific directory into a specific output directory
  vista generate --definitions-dir shares/acme/views --output-dir out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		definitionsDir := resolveString(generateDefinitions, cfg.Definitions)
		outputDir := resolveString(generateOutputDir, cfg.Output.Dir)

		shareCfg, datasetID, err := loadShare(cmd.Context(), generateShare, generateDataset)
		if err != nil {
			return err
		}

		paths, err := definitionFiles(definitionsDir)
		if err != nil {
			return cli.DefinitionError(fmt.Sprintf("reading definitions from %s", definitionsDir), err)
		}
		if len(paths) == 0 {
			return cli.DefinitionError(fmt.Sprintf("no definitions found in %s", definitionsDir), nil)
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return cli.GeneralError("creating output directory", err)
		}

		var compiled int
		for _, path := range paths {
			def, err := schema.LoadFile(path)
			if err != nil {
				return cli.DefinitionError(fmt.Sprintf("parsing definition %s", path), err)
			}

			statement, err := compiler.Compile(shareCfg, datasetID, def)
			if err != nil {
				return cli.DefinitionError(fmt.Sprintf("compiling view %s", def.Name), err)
			}

			outPath := filepath.Join(outputDir, def.Name+".sql")
			if err := os.WriteFile(outPath, []byte(statement+"\n"), 0o644); err != nil {
				return cli.GeneralError(fmt.Sprintf("writing %s", outPath), err)
			}
			compiled++

			if verbose > 0 && !quiet {
				fmt.Printf("  %s -> %s\n", path, outPath)
			}
		}

		if !quiet {
			fmt.Printf("Compiled %d views into %s\n", compiled, outputDir)
		}
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateDefinitions, "definitions-dir", "", "directory containing view definitions")
	f.StringVar(&generateShare, "share", "", "share configuration location")
	f.StringVar(&generateDataset, "dataset", "", "dataset the views belong to")
	f.StringVar(&generateOutputDir, "output-dir", "", "directory to write .sql files into")
}

// definitionFiles lists yaml documents in dir, sorted lexically.
func definitionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
