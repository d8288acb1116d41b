package cli

import (
	"time"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cadence"
	"github.com/alexanderramin/ember/internal/mcpserver"
	"github.com/alexanderramin/ember/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	CheckIn  service.CheckInService
	Insights service.InsightsService
	Settings service.SettingsService

	Prefs   usecase.Preferences
	Cadence *cadence.Cadence

	// IsInteractive enables the huh check-in form and the dashboard.
	IsInteractive bool
	// Clock overrides the wall clock; nil means time.Now.
	Clock func() time.Time
}

// NewRootCmd creates the top-level "ember" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ember",
		Short: "Daily three-question burnout check-in",
		Long: `ember asks three short questions a day (exhaustion, boredom, efficiency),
scores them from 1 to 5 and charts the result by week or month.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCheckInCmd(app),
		newTodayCmd(app),
		newChartCmd(app),
		newTrendCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
		newNextCmd(app),
		newDashboardCmd(app),
		newServeCmd(app),
	)

	return root
}

// now returns the current instant in the preferred location.
func (a *App) now() time.Time {
	if a.Clock != nil {
		t := a.Clock()
		return a.Prefs.ResolveNow(&t)
	}
	return a.Prefs.ResolveNow(nil)
}

// nowPtr is now() in the shape request types expect.
func (a *App) nowPtr() *time.Time {
	t := a.now()
	return &t
}

// mcpDeps exposes the services to the MCP tools.
func (a *App) mcpDeps() mcpserver.Deps {
	return mcpserver.Deps{
		Today:   a.CheckIn,
		CheckIn: a.CheckIn,
		Chart:   a.Insights,
		Trend:   a.Insights,
		History: a.Insights,
	}
}
