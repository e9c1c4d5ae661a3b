package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new exam version",
}

var generateLevelCmd = &cobra.Command{
	Use:   "level <number>",
	Short: "Generate a new version of a level exam (unit or boss)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := buildService(cmd.Context(), st)
		if err != nil {
			return err
		}

		ex, err := svc.GenerateLevelExam(cmd.Context(), level)
		if err != nil {
			return fmt.Errorf("generate level %d exam: %w", level, err)
		}

		fmt.Printf("Generated %s exam for level %d\n", ex.Type, ex.LevelNumber)
		fmt.Printf("  ID:        %s\n", ex.ExamID)
		fmt.Printf("  Version:   %d\n", ex.Version)
		fmt.Printf("  Questions: %d\n", len(ex.Questions))
		fmt.Printf("  Attempts:  %d generation round(s)\n", ex.GenerationAttempts)
		return nil
	},
}

var generateCategoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "Generate a new version of a category exam",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := buildService(cmd.Context(), st)
		if err != nil {
			return err
		}

		ex, err := svc.GenerateCategoryExam(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("generate category exam %s: %w", args[0], err)
		}

		fmt.Printf("Generated CATEGORY exam for %s\n", ex.CategoryID)
		fmt.Printf("  ID:        %s\n", ex.ExamID)
		fmt.Printf("  Version:   %d\n", ex.Version)
		fmt.Printf("  Questions: %d\n", len(ex.Questions))
		fmt.Printf("  Attempts:  %d generation round(s)\n", ex.GenerationAttempts)
		return nil
	},
}

func init() {
	generateCmd.AddCommand(generateLevelCmd)
	generateCmd.AddCommand(generateCategoryCmd)
}
