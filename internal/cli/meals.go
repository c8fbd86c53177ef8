package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newMealsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meals",
		Short: "Recipe lookup commands (TheMealDB)",
	}
	cmd.AddCommand(newMealsSearchCmd(app))
	cmd.AddCommand(newMealsShowCmd(app))
	cmd.AddCommand(newMealsCategoriesCmd(app))
	return cmd
}

func newMealsSearchCmd(app *App) *cobra.Command {
	var (
		category string
		area     string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search recipes by name, category, or cuisine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := mealClient(loadConfig())
			ctx := cmd.Context()

			switch {
			case category != "":
				return writeOut(cmd, app, map[string]any{"data": c.MealsByCategory(ctx, category)})
			case area != "":
				return writeOut(cmd, app, map[string]any{"data": c.MealsByArea(ctx, area)})
			default:
				query := ""
				if len(args) == 1 {
					query = strings.TrimSpace(args[0])
				}
				return writeOut(cmd, app, map[string]any{"data": c.SearchMeals(ctx, query)})
			}
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by meal category instead of name search")
	cmd.Flags().StringVar(&area, "area", "", "Filter by cuisine area instead of name search")
	cmd.MarkFlagsMutuallyExclusive("category", "area")
	return cmd
}

func newMealsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <meal-id>",
		Short: "Show a full recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meal, err := mealClient(loadConfig()).MealByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": meal})
		},
	}
}

func newMealsCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List recipe categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := mealClient(loadConfig()).Categories(cmd.Context())
			return writeOut(cmd, app, map[string]any{"data": cats})
		},
	}
}
