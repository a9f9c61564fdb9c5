package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakline-labs/deskmate/internal/core/domain"
)

var (
	productsJSON   bool
	productsDelete string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List stored products",
	Long: `Lists the stored product catalog. With --delete the named product is
removed instead; deletion is admin-gated when a password is configured.`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

func init() {
	productsCmd.Flags().BoolVar(&productsJSON, "json", false, "output as JSON")
	productsCmd.Flags().StringVar(&productsDelete, "delete", "", "remove the product with this id")
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if productsDelete != "" {
		if err := requireAdmin(); err != nil {
			return err
		}
		if err := catalogService.Remove(context.Background(), productsDelete); err != nil {
			return fmt.Errorf("removing product: %w", err)
		}
		cmd.Printf("Removed %s\n", productsDelete)
		return nil
	}

	listings, err := catalogService.Products(context.Background())
	if err != nil {
		return fmt.Errorf("listing products: %w", err)
	}

	if productsJSON {
		return outputProductsJSON(cmd, listings)
	}
	return outputProductsTable(cmd, listings)
}

func outputProductsJSON(cmd *cobra.Command, listings []domain.ProductListing) error {
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listings: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputProductsTable(cmd *cobra.Command, listings []domain.ProductListing) error {
	if len(listings) == 0 {
		cmd.Println("No products stored.")
		return nil
	}

	for _, l := range listings {
		if l.Price != "" {
			cmd.Printf("%-20s %s (%s)\n", l.ID, l.Name, l.Price)
		} else {
			cmd.Printf("%-20s %s\n", l.ID, l.Name)
		}
	}
	return nil
}
