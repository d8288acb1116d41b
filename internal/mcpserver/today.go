package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

// TodayTool handles the burnout_today MCP tool.
type TodayTool struct {
	uc app.TodayUseCase
}

func NewTodayTool(uc app.TodayUseCase) *TodayTool {
	return &TodayTool{uc: uc}
}

func (t *TodayTool) Definition() mcp.Tool {
	return mcp.NewTool("burnout_today",
		mcp.WithDescription(
			"Show today's three check-in questions and whether today's check-in is already done.",
		),
	)
}

func (t *TodayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, err := t.uc.Today(ctx, app.TodayRequest{})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load today: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Check-in for %s\n\n", view.Date.Format(domain.DateLayout))
	if view.CompletedToday && view.Record != nil {
		fmt.Fprintf(&b, "Done. Score %s", formatScore(view.Record.RiskScore))
		if view.Record.IsRiskDay {
			b.WriteString(" (risk day)")
		}
		b.WriteString("\n")
		return mcp.NewToolResultText(b.String()), nil
	}

	b.WriteString("Not done yet. Answer each from 1 (not at all) to 5 (very much):\n\n")
	for _, q := range view.Questions {
		fmt.Fprintf(&b, "- **%s**: %s\n", q.Dimension.DisplayName(), q.Text)
	}
	return mcp.NewToolResultText(b.String()), nil
}
