package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxHistoryDays = 90

// HistoryTool handles the burnout_history MCP tool.
type HistoryTool struct {
	uc app.HistoryUseCase
}

func NewHistoryTool(uc app.HistoryUseCase) *HistoryTool {
	return &HistoryTool{uc: uc}
}

func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("burnout_history",
		mcp.WithDescription("Recorded daily scores, newest first."),
		mcp.WithNumber("days",
			mcp.Description(fmt.Sprintf("How many days back to look (default 14, max %d)", maxHistoryDays)),
		),
	)
}

func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := intArg(req, "days", app.NewHistoryRequest().Days)
	if days < 1 || days > maxHistoryDays {
		return mcp.NewToolResultError(fmt.Sprintf("'days' must be between 1 and %d", maxHistoryDays)), nil
	}

	resp, err := t.uc.History(ctx, app.HistoryRequest{Days: days})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load history: %v", err)), nil
	}
	if len(resp.Records) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No check-ins in the last %d days.", days)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d check-ins:\n\n", len(resp.Records))
	for _, r := range resp.Records {
		flag := ""
		if r.IsRiskDay {
			flag = " (risk day)"
		}
		fmt.Fprintf(&b, "- %s: %s%s\n", r.Date.Format(domain.DateLayout), formatScore(r.RiskScore), flag)
	}
	return mcp.NewToolResultText(b.String()), nil
}
