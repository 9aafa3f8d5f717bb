package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/ruscorpora/internal/logger"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/config"
	"github.com/cognicore/ruscorpora/pkg/ruscorpora/normalize"
)

var (
	dbPath       string
	exportStages stageFlags
)

var exportCmd = &cobra.Command{
	Use:   "export [file...]",
	Short: "Normalize corpus files and store them in a SQLite database",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents stored in a SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	exportCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	exportStages.register(exportCmd)
	rootCmd.AddCommand(exportCmd)

	listCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	rootCmd.AddCommand(listCmd)
}

func openProcessor(cmd *cobra.Command, override func(*normalize.Options)) (*ruscorpora.Processor, error) {
	if dbPath == "" {
		return nil, errors.New("--db required")
	}
	comp, err := (&config.Loader{
		OptionsPath: configPath,
		StorePath:   dbPath,
		Override:    override,
	}).Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	comp.Normalizer.OnWarning(func(w normalize.Warning) {
		logger.Warn("%s", w)
	})
	return ruscorpora.New(ruscorpora.Options{Normalizer: comp.Normalizer, Store: comp.Store}), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := openProcessor(cmd, exportStages.override())
	if err != nil {
		return err
	}
	defer p.Close()

	out := cmd.OutOrStdout()
	for _, path := range args {
		logger.Info("exporting %s", path)
		res, err := p.ExportFile(cmd.Context(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\t%d sentences\t%d tokens\t%d warnings\n",
			res.ID, res.Summary.Name, res.Summary.Sentences, res.Summary.Tokens, res.Summary.Warnings)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	p, err := openProcessor(cmd, nil)
	if err != nil {
		return err
	}
	defer p.Close()

	docs, err := p.Documents(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, d := range docs {
		fmt.Fprintf(out, "%s\t%s\t%s\t%d sentences\t%d tokens\t%d warnings\n",
			d.ID, d.Name, d.CreatedAt.Format("2006-01-02 15:04:05"), d.Sentences, d.Tokens, d.Warnings)
	}
	return nil
}
