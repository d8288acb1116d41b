package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

// ChartTool handles the burnout_chart MCP tool.
type ChartTool struct {
	uc app.ChartUseCase
}

func NewChartTool(uc app.ChartUseCase) *ChartTool {
	return &ChartTool{uc: uc}
}

func (t *ChartTool) Definition() mcp.Tool {
	return mcp.NewTool("burnout_chart",
		mcp.WithDescription("Daily risk scores for a week or a month, one row per day."),
		mcp.WithString("window",
			mcp.Description("week (default) or month"),
			mcp.Enum("week", "month"),
		),
		mcp.WithString("date",
			mcp.Description("Any day inside the wanted window, YYYY-MM-DD. Defaults to today."),
		),
	)
}

func (t *ChartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	window := req.GetString("window", string(domain.WindowWeek))
	if !domain.ValidWindowKinds[window] {
		return mcp.NewToolResultError("'window' must be week or month"), nil
	}
	ref, err := dateArg(req, "date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.uc.Chart(ctx, app.ChartRequest{Window: domain.WindowKind(window), Reference: ref})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build chart: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", resp.Title)
	b.WriteString("| Day | Date | Score | Work day |\n|---|---|---|---|\n")
	for _, p := range resp.Points {
		score := "-"
		if p.HasResponse {
			score = formatScore(p.Value)
			if p.IsRiskDay {
				score += " ⚠"
			}
		}
		work := ""
		if p.IsWorkDay {
			work = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Label, p.Date.Format(domain.DateLayout), score, work)
	}
	s := resp.Summary
	fmt.Fprintf(&b, "\n%d of %d days answered, %d risk days", s.Responded, s.Buckets, s.RiskDays)
	if s.Responded > 0 {
		fmt.Fprintf(&b, ", average %s", formatScore(s.Average))
	}
	b.WriteString(".\n")
	return mcp.NewToolResultText(b.String()), nil
}
