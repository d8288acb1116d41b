package mcpserver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument; JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

var errMissingArg = errors.New("missing argument")

// wholeArg extracts a required whole-number argument. A missing key
// returns errMissingArg; a fraction or a non-number is out of range.
func wholeArg(req mcp.CallToolRequest, key string) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return 0, errMissingArg
	}
	v, ok := raw.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("'%s' = %v: must be a whole number: %w", key, raw, domain.ErrAnswerOutOfRange)
	}
	return int(v), nil
}

// dateArg parses an optional YYYY-MM-DD argument.
func dateArg(req mcp.CallToolRequest, key string) (*time.Time, error) {
	s := req.GetString(key, "")
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("'%s' must be YYYY-MM-DD", key)
	}
	return &t, nil
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}
