package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEntriesResource(srv, svc)
	registerSummaryTemplate(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"mindmap://entries",
		"Emotion log",
		mcp.WithResourceDescription("Every logged emotion, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListEntries(ctx, ListOptions{})
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entries": entries,
			"count":   len(entries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerSummaryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"mindmap://summary/{period}",
		"Summary",
		mcp.WithTemplateDescription("Weekly or monthly summary of the log."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		period := argument(request, "period")

		var payload any
		var err error
		switch period {
		case "weekly", "week":
			payload, err = svc.WeeklySummary(ctx)
		case "monthly", "month":
			payload, err = svc.MonthlySummary(ctx)
		default:
			return nil, fmt.Errorf("unknown summary period %q (expected weekly or monthly)", period)
		}
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"mindmap://entries/{timestamp}",
		"Entry Details",
		mcp.WithTemplateDescription("A single entry, addressed by its timestamp."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ts := argument(request, "timestamp")
		if ts == "" {
			return nil, fmt.Errorf("entry timestamp is required")
		}

		dto, err := svc.EntryByTimestamp(ctx, ts)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// argument reads a template variable, which the server may hand over as a
// string or a single element slice.
func argument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
