package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/adapters/driving/tui"
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a product question",
	Long: `Retrieves the stored product description nearest to the query.
With a query argument the answer prints once; without one an
interactive session opens.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	if len(args) == 0 {
		return tui.Run(answerService)
	}

	query := strings.Join(args, " ")
	answer, err := answerService.Ask(context.Background(), query)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	cmd.Println(answer.Text)
	if answer.Found {
		cmd.Printf("(%s, score %.3f)\n", answer.DocumentID, answer.Score)
	}
	return nil
}
