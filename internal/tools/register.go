package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reed-jobs-mcp/internal/models"
)

// Register installs the job tools on server. analyze_job_fit is only added when an analyzer is configured.
func Register(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolSearchJobs,
		Description: "Search Reed.co.uk job listings by keywords, location, contract type and salary. Returns one page of results as text.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input models.SearchCriteria) (*mcp.CallToolResult, any, error) {
		return h.SearchJobs(ctx, input).toolResult(), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolGetJobDetails,
		Description: "Get the full details of a Reed.co.uk job, including its description, by job ID.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input models.JobDetailsQuery) (*mcp.CallToolResult, any, error) {
		return h.GetJobDetails(ctx, input).toolResult(), nil, nil
	})

	if !h.AnalyzerEnabled() {
		return
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolAnalyzeJobFit,
		Description: "Compare a CV against a Reed.co.uk job and recommend whether to apply.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input models.JobFitQuery) (*mcp.CallToolResult, any, error) {
		return h.AnalyzeJobFit(ctx, input).toolResult(), nil, nil
	})
}

func (r Result) toolResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: r.Text}},
		IsError: r.IsError,
	}
}
