// Package mcpserver exposes burnout status over the Model Context Protocol
// so an agent can read today's check-in state, the trailing trend and the
// charts, and submit a check-in on the user's behalf.
package mcpserver

import (
	"github.com/alexanderramin/ember/internal/app"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Deps are the use cases the tools call into.
type Deps struct {
	Today   app.TodayUseCase
	CheckIn app.SubmitCheckInUseCase
	Chart   app.ChartUseCase
	Trend   app.TrendUseCase
	History app.HistoryUseCase
}

// New creates the MCP server with every tool registered.
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"ember",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	today := NewTodayTool(deps.Today)
	s.AddTool(today.Definition(), today.Handle)

	checkIn := NewCheckInTool(deps.CheckIn)
	s.AddTool(checkIn.Definition(), checkIn.Handle)

	chart := NewChartTool(deps.Chart)
	s.AddTool(chart.Definition(), chart.Handle)

	trend := NewTrendTool(deps.Trend)
	s.AddTool(trend.Definition(), trend.Handle)

	history := NewHistoryTool(deps.History)
	s.AddTool(history.Definition(), history.Handle)

	return s
}

// Serve runs the server over stdin/stdout until the client disconnects.
func Serve(deps Deps) error {
	return server.ServeStdio(New(deps))
}

const instructions = `ember tracks a daily three-question burnout check-in.
Scores run from 1 (low risk) to 5 (high risk); a day scoring 3.5 or more is a risk day.
Use burnout_today before asking the user anything, burnout_trend for the weekly picture,
and burnout_checkin only with answers the user actually gave.`
