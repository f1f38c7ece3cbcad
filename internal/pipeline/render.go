package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/reed-jobs-mcp/internal/models"
)

// Placeholders substituted for missing fields.
const (
	NotSpecified    = "Not specified"
	NoDescription   = "No description provided"
	UntitledJob     = "Untitled job"
	UnknownEmployer = "Unknown employer"
	DefaultCurrency = "GBP"
)

// Renderer turns Reed responses into the plain-text tool output.
type Renderer struct {
	jobsBaseURL string
}

func NewRenderer(jobsBaseURL string) Renderer {
	return Renderer{jobsBaseURL: strings.TrimRight(jobsBaseURL, "/")}
}

// JobURL is the public page of a job.
func (r Renderer) JobURL(jobID int64) string {
	return r.jobsBaseURL + "/" + strconv.FormatInt(jobID, 10)
}

// SearchResults renders the header line followed by one block per job.
func (r Renderer) SearchResults(keywords, location string, jobs []models.JobSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d jobs matching \"%s\"", len(jobs), keywords)
	if location != "" {
		fmt.Fprintf(&b, " in %s", location)
	}
	b.WriteString("\n\n")

	for i, job := range jobs {
		if i > 0 {
			b.WriteString("\n")
		}
		r.writeSummary(&b, job)
	}

	return b.String()
}

func (r Renderer) writeSummary(b *strings.Builder, job models.JobSummary) {
	fmt.Fprintf(b, "%s at %s\n", OrPlaceholder(job.JobTitle, UntitledJob), OrPlaceholder(job.EmployerName, UnknownEmployer))
	fmt.Fprintf(b, "Location: %s\n", OrPlaceholder(job.LocationName, NotSpecified))
	if salary, ok := FormatSalary(job.MinimumSalary, job.MaximumSalary); ok {
		fmt.Fprintf(b, "Salary: %s\n", salary)
	}
	fmt.Fprintf(b, "Date Posted: %s\n", OrPlaceholder(job.Date, NotSpecified))
	fmt.Fprintf(b, "Job ID: %d\n", job.JobID)
	fmt.Fprintf(b, "URL: %s\n", r.JobURL(job.JobID))
}

// JobDetails renders a single job. jobID is the identifier the caller asked for.
func (r Renderer) JobDetails(jobID int64, job models.JobDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s at %s\n\n", OrPlaceholder(job.JobTitle, UntitledJob), OrPlaceholder(job.EmployerName, UnknownEmployer))
	fmt.Fprintf(&b, "Location: %s\n", OrPlaceholder(job.LocationName, NotSpecified))
	if salary, ok := FormatSalary(job.MinimumSalary, job.MaximumSalary); ok {
		fmt.Fprintf(&b, "Salary: %s %s\n", salary, OrPlaceholder(job.Currency, DefaultCurrency))
	}
	if job.SalaryType != "" {
		fmt.Fprintf(&b, "Salary type: %s\n", job.SalaryType)
	}
	fmt.Fprintf(&b, "Contract type: %s\n", OrPlaceholder(job.ContractType, NotSpecified))
	fmt.Fprintf(&b, "Job type: %s\n", OrPlaceholder(job.JobType, NotSpecified))
	fmt.Fprintf(&b, "Expires: %s\n\n", OrPlaceholder(job.ExpirationDate, NotSpecified))
	fmt.Fprintf(&b, "Description:\n%s\n\n", OrPlaceholder(PlainText(job.JobDescription), NoDescription))
	fmt.Fprintf(&b, "Apply at: %s", r.JobURL(jobID))

	return b.String()
}

// FormatSalary renders "£min - £max" or "£min". It reports false when no minimum is known.
func FormatSalary(minimum, maximum *float64) (string, bool) {
	if minimum == nil {
		return "", false
	}
	if maximum == nil {
		return "£" + formatAmount(*minimum), true
	}
	return "£" + formatAmount(*minimum) + " - £" + formatAmount(*maximum), true
}

// formatAmount groups thousands and keeps at most three fraction digits.
func formatAmount(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}

// OrPlaceholder returns placeholder when v is blank.
func OrPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
