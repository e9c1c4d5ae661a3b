package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fasahat78/startege/internal/gate"
)

var eligibilityCmd = &cobra.Command{
	Use:   "eligibility <user> <boss-level>",
	Short: "Check a user's standing toward a boss exam",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[1], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		checker := gate.NewChecker(st.GateStore())
		elig, err := checker.Check(cmd.Context(), args[0], level, time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("User:  %s\n", args[0])
		fmt.Printf("Level: %d\n", level)
		fmt.Printf("State: %s\n", elig.State)
		for _, r := range elig.Reasons {
			fmt.Printf("  - %s\n", r)
		}
		if elig.NextEligibleAt != nil {
			fmt.Printf("Next eligible at: %s\n", elig.NextEligibleAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
