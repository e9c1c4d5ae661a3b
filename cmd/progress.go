package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fasahat78/startege/internal/catalog"
)

var progressCmd = &cobra.Command{
	Use:   "progress <user>",
	Short: "Show a user's level and category progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		levels, err := st.ProgressRepo().PassedLevels(ctx, userID)
		if err != nil {
			return fmt.Errorf("query passed levels: %w", err)
		}
		categories, err := st.ProgressRepo().PassedCategories(ctx, userID)
		if err != nil {
			return fmt.Errorf("query passed categories: %w", err)
		}

		fmt.Printf("Progress for %s\n", userID)
		fmt.Println(strings.Repeat("─", 48))

		if len(levels) == 0 {
			fmt.Println("No levels passed yet.")
		} else {
			nums := make([]int, 0, len(levels))
			for n := range levels {
				nums = append(nums, n)
			}
			sort.Ints(nums)
			for _, n := range nums {
				title := ""
				if cfg, ok := catalog.LevelConfigFor(n); ok {
					title = cfg.Title
				}
				fmt.Printf("  Level %-3d PASSED  %s\n", n, title)
			}
		}

		if len(categories) > 0 {
			fmt.Println()
			ids := make([]string, 0, len(categories))
			for id := range categories {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("  Category %-20s PASSED\n", id)
			}
		}

		if levels[catalog.TerminalLevel] {
			fmt.Println()
			fmt.Println("Certification complete.")
		}
		return nil
	},
}
