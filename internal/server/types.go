package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler executes one tool call. Validation failures and upstream
// errors are both surfaced inside the result as a single text item; only a
// lookup of an unregistered name produces a Go error (see Server.Call).
type toolHandler func(ctx context.Context, args map[string]any) *mcp.CallToolResult

// toolEntry pairs a tool's descriptor with its handler.
type toolEntry struct {
	tool   mcp.Tool
	handle toolHandler
}

// addressArg extracts the address argument. Presence is all that is checked;
// non-string values are forwarded in their printed form.
func addressArg(args map[string]any) (string, bool) {
	if args == nil {
		return "", false
	}
	v, ok := args["address"]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// intArg returns the integer argument or the declared default. Values decoded
// from JSON arrive as float64. Out-of-range values are not clamped; the
// schema bounds are advisory.
func intArg(args map[string]any, key string, def int) int {
	if args == nil {
		return def
	}
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// stringArg returns the string argument or the declared default.
func stringArg(args map[string]any, key, def string) string {
	if args == nil {
		return def
	}
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}
