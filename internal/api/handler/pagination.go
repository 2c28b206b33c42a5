package handler

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vfg2006/fb-ads-mcp-server/infrastructure/integrator/meta"
)

func Pagination(service *meta.MetaIntegrator) []Tool {
	return []Tool{
		{
			Definition: mcp.NewTool("fetch_pagination_url",
				mcp.WithDescription("Fetch data from a pagination URL returned in a previous response's paging.next or paging.previous"),
				mcp.WithString("url",
					mcp.Required(),
					mcp.Description("Full pagination URL from a previous API response (the access token is already embedded)"),
				),
			),
			Handler: fetchPaginationURL(service),
		},
	}
}

func fetchPaginationURL(service *meta.MetaIntegrator) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url argument is required"), nil
		}

		resp, err := service.FetchPaginationURL(ctx, rawURL)
		if err != nil {
			return errorResult(err)
		}
		return textResult(resp)
	}
}
