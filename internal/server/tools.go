package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

const missingAddress = "Address parameter is required"

// registerTools builds the tool catalog. The set is fixed for the lifetime of
// the process; no registration happens after construction.
func (s *Server) registerTools() {
	s.catalog = []toolEntry{
		{
			tool: mcp.NewTool("get-sol-token-price",
				mcp.WithDescription("Get Solana token price information from Solscan"),
				mcp.WithString("address", mcp.Required(),
					mcp.Description("Token address on Solana blockchain")),
			),
			handle: s.handleTokenPrice,
		},
		{
			tool: mcp.NewTool("get-latest-blocks",
				mcp.WithDescription("Get Solana latest blocks information from Solscan"),
				mcp.WithNumber("limit",
					mcp.Description("Number of latest blocks to return"),
					mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
			),
			handle: s.handleLatestBlocks,
		},
		{
			tool: mcp.NewTool("get-account-info",
				mcp.WithDescription("Get token accounts held by a Solana address"),
				mcp.WithString("address", mcp.Required(),
					mcp.Description("Solana account address")),
				mcp.WithNumber("page",
					mcp.Description("Page number (1-based)"),
					mcp.DefaultNumber(1), mcp.Min(1)),
				mcp.WithNumber("page_size",
					mcp.Description("Number of items per page"),
					mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
			),
			handle: s.handleAccountInfo,
		},
		{
			tool: mcp.NewTool("get-account-activities",
				mcp.WithDescription("Get DeFi activities for a Solana address"),
				mcp.WithString("address", mcp.Required(),
					mcp.Description("Solana account address")),
				mcp.WithNumber("page",
					mcp.Description("Page number (1-based)"),
					mcp.DefaultNumber(1), mcp.Min(1)),
				mcp.WithNumber("page_size",
					mcp.Description("Number of items per page"),
					mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
				mcp.WithString("sort_by",
					mcp.Description("Field to sort by"),
					mcp.DefaultString("block_time"), mcp.Enum("block_time")),
				mcp.WithString("sort_order",
					mcp.Description("Sort order (asc or desc)"),
					mcp.DefaultString("desc"), mcp.Enum("asc", "desc")),
			),
			handle: s.handleAccountActivities,
		},
		{
			tool: mcp.NewTool("get-token-info",
				mcp.WithDescription("Get detailed token metadata from Solscan"),
				mcp.WithString("address", mcp.Required(),
					mcp.Description("Token address on Solana blockchain")),
			),
			handle: s.handleTokenInfo,
		},
		{
			tool: mcp.NewTool("list-sol-tokens",
				mcp.WithDescription("Get a paginated list of tokens from Solscan"),
				mcp.WithNumber("page",
					mcp.Description("Page number (1-based)"),
					mcp.DefaultNumber(1), mcp.Min(1)),
				mcp.WithNumber("page_size",
					mcp.Description("Number of items per page"),
					mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
			),
			handle: s.handleListTokens,
		},
		{
			tool: mcp.NewTool("get-token-market",
				mcp.WithDescription("Get token market data from Solscan"),
				mcp.WithString("address", mcp.Required(),
					mcp.Description("Token address on Solana blockchain")),
			),
			handle: s.handleTokenMarket,
		},
		{
			tool: mcp.NewTool("get-trending-tokens",
				mcp.WithDescription("Get trending tokens from Solscan"),
				mcp.WithNumber("limit",
					mcp.Description("Number of trending tokens to return"),
					mcp.DefaultNumber(10), mcp.Min(1), mcp.Max(100)),
			),
			handle: s.handleTrendingTokens,
		},
	}

	s.registry = make(map[string]toolEntry, len(s.catalog))
	for _, e := range s.catalog {
		s.registry[e.tool.Name] = e
	}
}

// Tools returns the tool descriptors in catalog order. The sequence is the
// same on every call.
func (s *Server) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(s.catalog))
	for i, e := range s.catalog {
		out[i] = e.tool
	}
	return out
}

// Call executes the named tool against the given arguments. An unregistered
// name is a protocol error and returns a non-nil error; every other outcome,
// including upstream failure, is reported inside the result as text.
func (s *Server) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	s.log.Info("tool called", zap.String("tool", name), zap.Any("arguments", args))
	entry, ok := s.registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return entry.handle(ctx, args), nil
}

// fetchText performs the upstream GET and stringifies whatever came back.
// Failures are folded into an error-shaped payload and stringified the same
// way, so success and failure share one response shape.
func (s *Server) fetchText(ctx context.Context, url string) *mcp.CallToolResult {
	payload, err := s.client.Get(ctx, url)
	if err != nil {
		payload = map[string]any{"error": err.Error()}
	}
	return mcp.NewToolResultText(stringify(payload))
}

func stringify(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func (s *Server) handleTokenPrice(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	addr, ok := addressArg(args)
	if !ok {
		return mcp.NewToolResultText(missingAddress)
	}
	url := fmt.Sprintf("%s/v2.0/token/price?address=%s", s.cfg.BaseURL, addr)
	return s.fetchText(ctx, url)
}

func (s *Server) handleLatestBlocks(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	limit := intArg(args, "limit", 10)
	url := fmt.Sprintf("%s/v2.0/block/last?limit=%d", s.cfg.BaseURL, limit)
	return s.fetchText(ctx, url)
}

func (s *Server) handleAccountInfo(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	addr, ok := addressArg(args)
	if !ok {
		return mcp.NewToolResultText(missingAddress)
	}
	page := intArg(args, "page", 1)
	pageSize := intArg(args, "page_size", 10)
	url := fmt.Sprintf("%s/v2.0/account/token-accounts?address=%s&type=token&page=%d&page_size=%d",
		s.cfg.BaseURL, addr, page, pageSize)
	return s.fetchText(ctx, url)
}

func (s *Server) handleAccountActivities(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	addr, ok := addressArg(args)
	if !ok {
		return mcp.NewToolResultText(missingAddress)
	}
	page := intArg(args, "page", 1)
	pageSize := intArg(args, "page_size", 10)
	sortBy := stringArg(args, "sort_by", "block_time")
	sortOrder := stringArg(args, "sort_order", "desc")
	url := fmt.Sprintf("%s/v2.0/account/defi/activities?address=%s&page=%d&page_size=%d&sort_by=%s&sort_order=%s",
		s.cfg.BaseURL, addr, page, pageSize, sortBy, sortOrder)
	return s.fetchText(ctx, url)
}

func (s *Server) handleTokenInfo(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	addr, ok := addressArg(args)
	if !ok {
		return mcp.NewToolResultText(missingAddress)
	}
	url := fmt.Sprintf("%s/v2.0/token/meta?address=%s", s.cfg.BaseURL, addr)
	return s.fetchText(ctx, url)
}

func (s *Server) handleListTokens(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	page := intArg(args, "page", 1)
	pageSize := intArg(args, "page_size", 10)
	url := fmt.Sprintf("%s/v2.0/token/list?page=%d&page_size=%d", s.cfg.BaseURL, page, pageSize)
	return s.fetchText(ctx, url)
}

func (s *Server) handleTokenMarket(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	addr, ok := addressArg(args)
	if !ok {
		return mcp.NewToolResultText(missingAddress)
	}
	url := fmt.Sprintf("%s/v2.0/token/market?address=%s", s.cfg.BaseURL, addr)
	return s.fetchText(ctx, url)
}

func (s *Server) handleTrendingTokens(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	limit := intArg(args, "limit", 10)
	url := fmt.Sprintf("%s/v2.0/token/trending?limit=%d", s.cfg.BaseURL, limit)
	return s.fetchText(ctx, url)
}
