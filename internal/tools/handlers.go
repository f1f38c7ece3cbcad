package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reed-jobs-mcp/internal/logger"
	"github.com/reed-jobs-mcp/internal/metrics"
	"github.com/reed-jobs-mcp/internal/models"
	"github.com/reed-jobs-mcp/internal/pipeline"
	"github.com/reed-jobs-mcp/internal/services"
)

const (
	ToolSearchJobs    = "search_jobs"
	ToolGetJobDetails = "get_job_details"
	ToolAnalyzeJobFit = "analyze_job_fit"
)

// JobFetcher is implemented by *reed.Client.
type JobFetcher interface {
	Search(ctx context.Context, params url.Values) (*models.SearchResponse, error)
	JobDetails(ctx context.Context, jobID int64) (*models.JobDetail, error)
}

// JobArchive is implemented by *repo.Archive.
type JobArchive interface {
	SaveJobs(ctx context.Context, jobs []models.JobSummary) error
	SaveJobDetail(ctx context.Context, job models.JobDetail) error
}

// FitAnalyzer is implemented by services.OpenRouterService.
type FitAnalyzer interface {
	AnalyzeJobDescription(cv string, jobDesc models.JobDescription) (*services.JobAnalysisResult, error)
}

// Result is the text block a tool call produces.
type Result struct {
	Text    string
	IsError bool
}

// Handlers hold no per-call state and may serve overlapping calls.
type Handlers struct {
	fetcher  JobFetcher
	renderer pipeline.Renderer
	archive  JobArchive
	analyzer FitAnalyzer
	logger   *slog.Logger
}

type Option func(*Handlers)

// WithJobsBaseURL sets the root of the public job pages used in URL lines.
func WithJobsBaseURL(u string) Option {
	return func(h *Handlers) { h.renderer = pipeline.NewRenderer(u) }
}

// WithArchive stores every fetched job. Archive failures are logged only.
func WithArchive(a JobArchive) Option {
	return func(h *Handlers) { h.archive = a }
}

// WithAnalyzer enables the analyze_job_fit tool.
func WithAnalyzer(a FitAnalyzer) Option {
	return func(h *Handlers) { h.analyzer = a }
}

func NewHandlers(fetcher JobFetcher, log *slog.Logger, opts ...Option) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Handlers{
		fetcher:  fetcher,
		renderer: pipeline.NewRenderer("https://www.reed.co.uk/jobs"),
		logger:   log,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AnalyzerEnabled reports whether analyze_job_fit should be offered.
func (h *Handlers) AnalyzerEnabled() bool {
	return h.analyzer != nil
}

func (h *Handlers) SearchJobs(ctx context.Context, criteria models.SearchCriteria) Result {
	return h.run(ctx, ToolSearchJobs, searchErrorPrefix, func(ctx context.Context) (string, error) {
		params, err := pipeline.BuildSearchQuery(criteria)
		if err != nil {
			return "", err
		}

		res, err := h.fetcher.Search(ctx, params)
		if err != nil {
			return "", err
		}

		h.archiveJobs(ctx, res.Results)
		return h.renderer.SearchResults(criteria.Keywords, params.Get("locationName"), res.Results), nil
	})
}

func (h *Handlers) GetJobDetails(ctx context.Context, query models.JobDetailsQuery) Result {
	return h.run(ctx, ToolGetJobDetails, detailsErrorPrefix, func(ctx context.Context) (string, error) {
		job, err := h.fetchDetail(ctx, query.JobID)
		if err != nil {
			return "", err
		}
		return h.renderer.JobDetails(query.JobID, *job), nil
	})
}

func (h *Handlers) AnalyzeJobFit(ctx context.Context, query models.JobFitQuery) Result {
	return h.run(ctx, ToolAnalyzeJobFit, analysisErrorPrefix, func(ctx context.Context) (string, error) {
		if h.analyzer == nil {
			return "", ErrAnalyzerDisabled
		}
		if strings.TrimSpace(query.CV) == "" {
			return "", services.ErrMissingCV
		}

		job, err := h.fetchDetail(ctx, query.JobID)
		if err != nil {
			return "", err
		}

		result, err := h.analyzer.AnalyzeJobDescription(query.CV, describe(*job))
		if err != nil {
			return "", err
		}

		header := fmt.Sprintf("%s at %s\n%s\n\n",
			pipeline.OrPlaceholder(job.JobTitle, pipeline.UntitledJob),
			pipeline.OrPlaceholder(job.EmployerName, pipeline.UnknownEmployer),
			h.renderer.JobURL(query.JobID))
		return header + result.Text(), nil
	})
}

func (h *Handlers) fetchDetail(ctx context.Context, jobID int64) (*models.JobDetail, error) {
	job, err := h.fetcher.JobDetails(ctx, jobID)
	if err != nil {
		return nil, err
	}

	h.archiveDetail(ctx, *job)
	return job, nil
}

// run executes one tool call, turning every failure, panics included, into error text.
func (h *Handlers) run(ctx context.Context, tool, errorPrefix string, call func(context.Context) (string, error)) Result {
	start := time.Now()
	log := h.logger.With("tool", tool, "request_id", uuid.NewString())
	ctx = logger.ContextWithLogger(ctx, log)

	text, err := safely(ctx, call)
	metrics.ToolCallsTotal.WithLabelValues(tool, metrics.Outcome(err)).Inc()

	if err != nil {
		log.Error(errorPrefix, "error", err, "took", time.Since(start))
		return Result{Text: ErrorText(errorPrefix, err), IsError: true}
	}

	log.Info("tool call completed", "took", time.Since(start))
	return Result{Text: text}
}

func safely(ctx context.Context, call func(context.Context) (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return call(ctx)
}

func (h *Handlers) archiveJobs(ctx context.Context, jobs []models.JobSummary) {
	if h.archive == nil || len(jobs) == 0 {
		return
	}
	if err := h.archive.SaveJobs(ctx, jobs); err != nil {
		logger.FromContext(ctx).Warn("Failed to archive search results", "error", err, "count", len(jobs))
	}
}

func (h *Handlers) archiveDetail(ctx context.Context, job models.JobDetail) {
	if h.archive == nil {
		return
	}
	if err := h.archive.SaveJobDetail(ctx, job); err != nil {
		logger.FromContext(ctx).Warn("Failed to archive job detail", "error", err, "job_id", job.JobID)
	}
}

// describe builds the analyzer input from a Reed job.
func describe(job models.JobDetail) models.JobDescription {
	criteria := map[string]string{}
	add := func(k, v string) {
		if strings.TrimSpace(v) != "" {
			criteria[k] = v
		}
	}
	add("Location", job.LocationName)
	add("Contract type", job.ContractType)
	add("Job type", job.JobType)
	add("Salary type", job.SalaryType)
	if salary, ok := pipeline.FormatSalary(job.MinimumSalary, job.MaximumSalary); ok {
		add("Salary", salary)
	}

	return models.JobDescription{
		JobID:       job.JobID,
		Title:       job.JobTitle,
		Employer:    job.EmployerName,
		Description: pipeline.OrPlaceholder(pipeline.PlainText(job.JobDescription), pipeline.NoDescription),
		Criteria:    criteria,
	}
}
