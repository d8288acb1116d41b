package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
	"github.com/mark3labs/mcp-go/mcp"
)

// TrendTool handles the burnout_trend MCP tool.
type TrendTool struct {
	uc app.TrendUseCase
}

func NewTrendTool(uc app.TrendUseCase) *TrendTool {
	return &TrendTool{uc: uc}
}

func (t *TrendTool) Definition() mcp.Tool {
	return mcp.NewTool("burnout_trend",
		mcp.WithDescription(
			"Burnout risk over the last 7 days: High when 3 or more days scored 3.5 or above, otherwise Low.",
		),
	)
}

func (t *TrendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := t.uc.Trend(ctx, app.TrendRequest{})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to classify trend: %v", err)), nil
	}
	tr := resp.Trend

	var b strings.Builder
	fmt.Fprintf(&b, "## Trend %s to %s\n\n",
		tr.WindowStart.Format(domain.DateLayout), tr.WindowEnd.Format(domain.DateLayout))
	if !tr.Sufficient {
		fmt.Fprintf(&b, "Not enough data yet: %d of %d days answered.\n", tr.SampleSize, insights.MinTrendSamples)
		return mcp.NewToolResultText(b.String()), nil
	}
	fmt.Fprintf(&b, "- **Risk**: %s\n", tr.Label)
	fmt.Fprintf(&b, "- **Risk days**: %d of %d answered\n", tr.RiskDayCount, tr.SampleSize)
	fmt.Fprintf(&b, "- **Average score**: %s (%.0f%%)\n", formatScore(tr.AverageScore), resp.DisplayPct)
	fmt.Fprintf(&b, "- **Direction**: %s\n", tr.Direction)
	return mcp.NewToolResultText(b.String()), nil
}
