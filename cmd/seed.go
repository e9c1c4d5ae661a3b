package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/store"
)

// seedFile is the authored catalog layout: categories plus concepts
// placed on levels.
type seedFile struct {
	Categories []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Domain string `json:"domain"`
	} `json:"categories"`
	Concepts []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		CategoryID  string `json:"categoryId"`
		LevelNumber int    `json:"levelNumber"`
		Position    int    `json:"position"`
	} `json:"concepts"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <catalog.json>",
	Short: "Load the authored concept catalog into the database",
	Long:  "Seed loads categories and concepts from a JSON file. The catalog is the canonical scope for all generated exams and can only be seeded once.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}

		var f seedFile
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("parse catalog file: %w", err)
		}
		if len(f.Categories) == 0 || len(f.Concepts) == 0 {
			return fmt.Errorf("catalog file must define categories and concepts")
		}

		cats := make([]catalog.Category, 0, len(f.Categories))
		for _, c := range f.Categories {
			cats = append(cats, catalog.Category{ID: c.ID, Name: c.Name, Domain: c.Domain})
		}
		concepts := make([]store.SeedConcept, 0, len(f.Concepts))
		for _, c := range f.Concepts {
			concepts = append(concepts, store.SeedConcept{
				Concept:     catalog.Concept{ID: c.ID, Name: c.Name, CategoryID: c.CategoryID},
				LevelNumber: c.LevelNumber,
				Position:    c.Position,
			})
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.CatalogRepo().Seed(cmd.Context(), cats, concepts); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		fmt.Printf("Seeded %d categories and %d concepts\n", len(cats), len(concepts))
		return nil
	},
}
