package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/survey"
	"github.com/mark3labs/mcp-go/mcp"
)

// CheckInTool handles the burnout_checkin MCP tool.
type CheckInTool struct {
	uc app.SubmitCheckInUseCase
}

func NewCheckInTool(uc app.SubmitCheckInUseCase) *CheckInTool {
	return &CheckInTool{uc: uc}
}

func (t *CheckInTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Submit today's check-in. Each answer is an integer from 1 to 5. " +
				"Fails if today already has a check-in.",
		),
	}
	for _, d := range domain.Dimensions {
		opts = append(opts, mcp.WithNumber(string(d),
			mcp.Required(),
			mcp.Description(fmt.Sprintf("%s answer, 1-5", d.DisplayName())),
		))
	}
	return mcp.NewTool("burnout_checkin", opts...)
}

func (t *CheckInTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values := make(map[domain.Dimension]int, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		v, err := wholeArg(req, string(d))
		switch {
		case errors.Is(err, errMissingArg):
			return mcp.NewToolResultError(fmt.Sprintf("'%s' is required", d)), nil
		case err != nil:
			return mcp.NewToolResultError(err.Error()), nil
		}
		values[d] = v
	}

	res, err := t.uc.SubmitValues(ctx, app.SubmitCheckInRequest{Values: values})
	switch {
	case errors.Is(err, survey.ErrAlreadyCompletedToday):
		return mcp.NewToolResultError("today's check-in is already recorded"), nil
	case errors.Is(err, domain.ErrAnswerOutOfRange):
		return mcp.NewToolResultError(err.Error()), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("check-in failed: %v", err)), nil
	}

	text := fmt.Sprintf("Recorded. Score %s (%s band).", formatScore(res.Record.RiskScore), res.Band)
	if res.Record.IsRiskDay {
		text += " This is a risk day."
	}
	return mcp.NewToolResultText(text), nil
}
