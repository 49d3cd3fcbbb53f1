package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mindmap/pkg/app"
	"tableflip.dev/mindmap/pkg/entry"
	"tableflip.dev/mindmap/pkg/wheel"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogEmotionTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerWeeklySummaryTool(srv, svc)
	registerMonthlySummaryTool(srv, svc)
	registerExportLogTool(srv, svc)
	registerImportCSVTool(srv, svc)
	registerGetGoalTool(srv, svc)
}

func registerLogEmotionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_emotion",
		mcp.WithDescription("Log how you are feeling. Emotions from the wheel are "+fmt.Sprint(wheel.Labels())+" but any label is accepted."),
		mcp.WithString("emotion",
			mcp.Required(),
			mcp.Description("Emotion label, for example Joyful or Anxious."),
		),
		mcp.WithNumber("intensity",
			mcp.Description(fmt.Sprintf("Intensity from %d to %d (default %d).", entry.MinIntensity, entry.MaxIntensity, entry.DefaultIntensity)),
			mcp.Min(entry.MinIntensity),
			mcp.Max(entry.MaxIntensity),
		),
		mcp.WithString("context",
			mcp.Description("Optional short note on what was happening."),
		),
		mcp.WithString("journal",
			mcp.Description("Optional free-form journal text."),
		),
		mcp.WithString("timestamp",
			mcp.Description("Optional ISO-8601 instant; defaults to now."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Emotion   string `json:"emotion"`
			Intensity *int   `json:"intensity"`
			Context   string `json:"context"`
			Journal   string `json:"journal"`
			Timestamp string `json:"timestamp"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		intensity := entry.DefaultIntensity
		if args.Intensity != nil {
			intensity = *args.Intensity
		}

		dto, err := svc.LogEmotion(ctx, LogEmotionOptions{
			Emotion:   args.Emotion,
			Intensity: intensity,
			Context:   args.Context,
			Journal:   args.Journal,
			Timestamp: args.Timestamp,
		})
		if err != nil && dto == nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return withWarning(map[string]any{"entry": dto}, err)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete the entry logged at a timestamp."),
		mcp.WithString("timestamp",
			mcp.Required(),
			mcp.Description("Timestamp of the entry, exactly as listed."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ts, err := request.RequireString("timestamp")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		err = svc.DeleteEntry(ctx, ts)
		if err != nil && !app.IsPersistence(err) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return withWarning(map[string]any{"deleted": ts}, err)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List logged emotions, newest first."),
		mcp.WithNumber("days",
			mcp.Description("Only entries from the last N days (default all)."),
			mcp.Min(1),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 50)."),
			mcp.Min(1),
			mcp.Max(500),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := ListOptions{
			Days:  request.GetInt("days", 0),
			Limit: request.GetInt("limit", 50),
		}

		entries, err := svc.ListEntries(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by emotion, or fuzzily across emotion, context and journal."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithBoolean("fuzzy",
			mcp.Description("Match fuzzily across all text fields."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)
		fuzzy := request.GetBool("fuzzy", false)

		results, err := svc.SearchEntries(ctx, query, limit, fuzzy)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerWeeklySummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"weekly_summary",
		mcp.WithDescription("Summarize the last seven days: total logs, average intensity and most frequent emotion."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.WeeklySummary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerMonthlySummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"monthly_summary",
		mcp.WithDescription("Summarize the last thirty days with a per-day breakdown."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summary, err := svc.MonthlySummary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerExportLogTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"export_log",
		mcp.WithDescription("Export the whole log as JSON or CSV text."),
		mcp.WithString("format",
			mcp.Description("Export format (default json)."),
			mcp.Enum(string(app.FormatJSON), string(app.FormatCSV)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format := request.GetString("format", string(app.FormatJSON))

		dto, err := svc.Export(ctx, format)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerImportCSVTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"import_csv",
		mcp.WithDescription("Merge CSV rows into the log. Rows already present are skipped, never overwritten."),
		mcp.WithString("csv",
			mcp.Required(),
			mcp.Description("CSV text with a header row naming at least an Emotion column."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("csv")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ImportCSV(ctx, text)
		if err != nil && dto == nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return withWarning(map[string]any{"import": dto}, err)
	})
}

func registerGetGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_goal",
		mcp.WithDescription("Show the weekly mood goal and progress toward it."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Goal(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

// withWarning adds a persistence failure to an otherwise successful result.
func withWarning(payload map[string]any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		payload["warning"] = err.Error()
	}
	return toJSONResult(payload)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
