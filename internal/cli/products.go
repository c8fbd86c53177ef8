package cli

import (
	"github.com/spf13/cobra"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Packaged food lookup commands (Open Food Facts)",
	}
	cmd.AddCommand(newProductsSearchCmd(app))
	cmd.AddCommand(newProductsBarcodeCmd(app))
	return cmd
}

func newProductsSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search packaged foods by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prods := productClient(loadConfig()).SearchProducts(cmd.Context(), args[0])
			return writeOut(cmd, app, map[string]any{"data": prods})
		},
	}
}

func newProductsBarcodeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "barcode <code>",
		Short: "Look up a product by barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prods := productClient(loadConfig()).ProductByBarcode(cmd.Context(), args[0])
			return writeOut(cmd, app, map[string]any{"data": prods})
		},
	}
}
