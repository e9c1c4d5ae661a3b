package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fasahat78/startege/internal/examgen"
	"github.com/fasahat78/startege/internal/exams"
	"github.com/fasahat78/startege/internal/llm"
	"github.com/fasahat78/startege/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "startege",
	Short: "Certification exam engine for AI governance",
	Long:  "Startege — exam composition, assessment, and progression engine for a 40-level AI governance curriculum.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STARTEGE_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(eligibilityCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STARTEGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// buildService wires the store, LLM provider, and generation pipeline
// into the exam service. The caller owns closing the store.
func buildService(ctx context.Context, st *store.Store) (*exams.Service, error) {
	cfg := llm.ConfigFromEnv()
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	genCfg := examgen.DefaultConfig()
	pipeline := examgen.NewPipeline(examgen.NewLLMGenerator(provider, genCfg), genCfg)
	meta := exams.Metadata{Provider: cfg.Provider, Model: provider.ModelID()}
	return exams.NewService(st, pipeline, meta), nil
}
