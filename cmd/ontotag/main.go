// Package main provides the ontotag binary entry point. Ontotag stamps
// coarse type labels (Agent, Document, Code, Other) onto the source
// and target entities of a relational ontology stored as a JSON array
// of relation records.
//
// Typical usage:
//
//	ontotag annotate --ontology ontologies/software-engineering/ontology.json
//	ontotag annotate --taxonomy taxonomy.yaml --output annotated.json
//	ontotag stats --ontology ontology.json
//	ontotag export --ontology ontology.json --db ontology.db
//	ontotag report --ontology ontology.json --out ontology.xlsx
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/ontotag"
	"github.com/brunobiangulo/ontotag/ontology"
	"github.com/brunobiangulo/ontotag/report"
	"github.com/brunobiangulo/ontotag/store"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "ontotag",
		Short: "Annotate ontology entities with coarse type labels",
		Long: `Ontotag classifies every source and target entity of a relational
ontology into Agent, Document, Code, or Other using a static name
taxonomy, then rewrites the ontology document with the labels attached.
Everything else in the document is preserved.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(annotateCmd(), statsCmd(), exportCmd(), reportCmd(), versionCmd())
	return cmd
}

func annotateCmd() *cobra.Command {
	var (
		configPath   string
		ontologyPath string
		outputPath   string
		taxonomyPath string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Classify every entity and rewrite the ontology document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, ontologyPath, taxonomyPath)
			if err != nil {
				return err
			}
			if outputPath != "" {
				cfg.OutputPath = outputPath
			}

			ann, err := ontotag.New(cfg)
			if err != nil {
				return err
			}

			if dryRun {
				g, err := ontology.Load(cfg.OntologyPath)
				if err != nil {
					return err
				}
				stats := ontology.Annotate(g, ann.Taxonomy())
				slog.Info("dry run, destination not written")
				return printJSON(stats)
			}

			result, err := ann.Run(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "Ontology document to annotate")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (default: rewrite in place)")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy definition (YAML, JSON, or XLSX)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify in memory and print stats without writing")
	return cmd
}

func statsCmd() *cobra.Command {
	var (
		configPath   string
		ontologyPath string
		taxonomyPath string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print classification counts without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, stats, err := loadAnnotated(configPath, ontologyPath, taxonomyPath)
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "Ontology document to inspect")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy definition (YAML, JSON, or XLSX)")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		configPath   string
		ontologyPath string
		taxonomyPath string
		dbPath       string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Snapshot the annotated graph into a SQLite database",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, stats, err := loadAnnotated(configPath, ontologyPath, taxonomyPath)
			if err != nil {
				return err
			}

			s, err := store.New(dbPath)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ImportGraph(cmd.Context(), g); err != nil {
				return err
			}
			slog.Info("exported ontology snapshot",
				"db", dbPath,
				"relations", stats.Relations,
				"entities", stats.Entities)
			return printJSON(stats)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "Ontology document to export")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy definition (YAML, JSON, or XLSX)")
	cmd.Flags().StringVar(&dbPath, "db", "ontology.db", "SQLite database path")
	return cmd
}

func reportCmd() *cobra.Command {
	var (
		configPath   string
		ontologyPath string
		taxonomyPath string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an XLSX workbook summarising the annotated graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, stats, err := loadAnnotated(configPath, ontologyPath, taxonomyPath)
			if err != nil {
				return err
			}

			if err := report.WriteXLSX(outPath, g); err != nil {
				return err
			}
			slog.Info("wrote ontology report",
				"path", outPath,
				"relations", stats.Relations,
				"entities", stats.Entities)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&ontologyPath, "ontology", "", "Ontology document to report on")
	cmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Taxonomy definition (YAML, JSON, or XLSX)")
	cmd.Flags().StringVar(&outPath, "out", "ontology.xlsx", "Report workbook path")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ontotag version %s\n", version)
		},
	}
}

// resolveConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func resolveConfig(configPath, ontologyPath, taxonomyPath string) (ontotag.Config, error) {
	cfg := ontotag.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = ontotag.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if ontologyPath != "" {
		cfg.OntologyPath = ontologyPath
	}
	if taxonomyPath != "" {
		cfg.Taxonomy.Path = taxonomyPath
	}
	return cfg, nil
}

// loadAnnotated loads the ontology and classifies it in memory, for the
// read-only subcommands. The source document is never written.
func loadAnnotated(configPath, ontologyPath, taxonomyPath string) (ontology.Graph, ontology.Stats, error) {
	cfg, err := resolveConfig(configPath, ontologyPath, taxonomyPath)
	if err != nil {
		return nil, ontology.Stats{}, err
	}
	ann, err := ontotag.New(cfg)
	if err != nil {
		return nil, ontology.Stats{}, err
	}
	g, err := ontology.Load(cfg.OntologyPath)
	if err != nil {
		return nil, ontology.Stats{}, err
	}
	stats := ontology.Annotate(g, ann.Taxonomy())
	return g, stats, nil
}

func setupLogging(level string) {
	l := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	}
	// Stderr keeps stdout clean for the JSON the subcommands print.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
