package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit [email] [message]",
	Short: "Submit a query to the support team",
	Long: `Forwards your message to the support inbox. The email address is
included in the message so the team can reply to you.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if submitService == nil {
		return errors.New("submit service not configured")
	}

	email := args[0]
	message := strings.Join(args[1:], " ")

	if err := submitService.Submit(context.Background(), email, message); err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	cmd.Println("Your query has been submitted successfully!")
	return nil
}
