package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acampos/giftwise/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the most recent questionnaire result for an email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath, nil)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		result, err := st.ResultRepo().MostRecentByEmail(context.Background(), email)
		if err != nil {
			return fmt.Errorf("load result: %w", err)
		}
		if result == nil {
			fmt.Printf("No results found for %s\n", email)
			return nil
		}

		lang := resolveLang(cmd)
		fmt.Printf("%s <%s>  %s\n\n", result.Name, result.Email,
			result.CreatedAt.Format("2006-01-02 15:04"))
		for i, gs := range result.TopGifts {
			fmt.Printf("  %d. %-20s %d\n", i+1, gs.Gift.Name.In(lang), gs.Score)
		}
		if len(result.AllScores) > len(result.TopGifts) {
			fmt.Println()
			for _, gs := range result.AllScores[len(result.TopGifts):] {
				fmt.Printf("     %-20s %d\n", gs.Gift.Name.In(lang), gs.Score)
			}
		}
		return nil
	},
}

func init() {
	resultsCmd.Flags().String("email", "", "Email the result was recorded under")
}
