package cli

import (
	"context"
	"os"
	"strings"

	"nutriplan-cli/internal/api"
	"nutriplan-cli/internal/foodlog"
	"nutriplan-cli/internal/format"
	"nutriplan-cli/internal/model"
	"nutriplan-cli/internal/store"
	"nutriplan-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "nutriplan",
		Short:        "NutriPlan (local-first) nutrition tracker CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  nutriplan

  # Scriptable commands
  nutriplan log list
  nutriplan log add --name "Apple" --calories 95
  nutriplan meals search omelette
  nutriplan products barcode 3017620422003
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("NUTRIPLAN_DIR", ""), "Path to data dir (default: ~/.nutriplan)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLogCmd(app))
	cmd.AddCommand(newMealsCmd(app))
	cmd.AddCommand(newProductsCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	svc, err := loadService(ctx, app)
	if err != nil {
		return err
	}
	cfg := loadConfig()
	return tui.Run(svc, mealClient(cfg), productClient(cfg), cfg.DailyLimits())
}

// loadService resolves the data dir and builds the food log service on top
// of it. The dir is created on first use by the store itself. Initialize
// seeds today's empty log eagerly so a fresh install has a persisted
// record before the first read.
func loadService(ctx context.Context, app *App) (*foodlog.Service, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
		app.Dir = dir
	}
	s := store.Store{Dir: dir}
	svc := foodlog.NewService(s, foodlog.NewNotifier())
	if err := svc.Initialize(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// loadConfig reads the optional global config; a missing or unreadable file
// yields defaults.
func loadConfig() *store.GlobalConfig {
	cfg, err := store.LoadConfig()
	if err != nil {
		return &store.GlobalConfig{}
	}
	return cfg
}

func mealClient(cfg *store.GlobalConfig) *api.MealClient {
	return api.NewMealClient(cfg.MealAPIBase)
}

func productClient(cfg *store.GlobalConfig) *api.ProductClient {
	return api.NewProductClient(cfg.ProductAPIBase)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

// itemTotalsView is the shared data+totals shape the log commands print.
type itemTotalsView struct {
	Log    model.DailyLog  `json:"log"`
	Totals model.Nutrition `json:"totals"`
	Limits model.Limits    `json:"limits"`
}
