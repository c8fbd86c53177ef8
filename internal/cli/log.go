package cli

import (
	"strings"

	"nutriplan-cli/internal/foodlog"
	"nutriplan-cli/internal/model"

	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Daily food log commands",
	}
	cmd.AddCommand(newLogListCmd(app))
	cmd.AddCommand(newLogAddCmd(app))
	cmd.AddCommand(newLogRemoveCmd(app))
	cmd.AddCommand(newLogTotalsCmd(app))
	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's log with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), app)
			if err != nil {
				return err
			}
			log, err := svc.Log(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": itemTotalsView{
				Log:    log,
				Totals: foodlog.ComputeTotals(log),
				Limits: loadConfig().DailyLimits(),
			}})
		},
	}
}

func newLogAddCmd(app *App) *cobra.Command {
	var (
		name     string
		image    string
		itemType string
		calories float64
		protein  float64
		carbs    float64
		fat      float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to today's log",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), app)
			if err != nil {
				return err
			}

			src := model.SourceProduct
			if strings.EqualFold(itemType, string(model.SourceMeal)) {
				src = model.SourceMeal
			}

			item, err := svc.AddItem(cmd.Context(), foodlog.ItemInput{
				Name:  strings.TrimSpace(name),
				Image: image,
				Type:  src,
				Nutrition: model.Nutrition{
					Calories: calories,
					Protein:  protein,
					Carbs:    carbs,
					Fat:      fat,
				},
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": item})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	cmd.Flags().StringVar(&itemType, "type", "Product", "Item source (Meal|Product)")
	cmd.Flags().Float64Var(&calories, "calories", 0, "Calories (kcal)")
	cmd.Flags().Float64Var(&protein, "protein", 0, "Protein (g)")
	cmd.Flags().Float64Var(&carbs, "carbs", 0, "Carbs (g)")
	cmd.Flags().Float64Var(&fat, "fat", 0, "Fat (g)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove an item from today's log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), app)
			if err != nil {
				return err
			}
			if err := svc.RemoveItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}
}

func newLogTotalsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show today's nutrition totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(cmd.Context(), app)
			if err != nil {
				return err
			}
			totals, err := svc.Totals(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"totals": totals,
				"limits": loadConfig().DailyLimits(),
			}})
		},
	}
}
