package repo

import (
	"context"
	"database/sql"

	"github.com/reed-jobs-mcp/internal/models"
)

// Archive combines both repositories behind the interface the tools expect.
type Archive struct {
	jobs    *JobRepository
	details *JobDescriptionRepository
}

func NewArchive(db *sql.DB) *Archive {
	return &Archive{
		jobs:    NewJobRepository(db),
		details: NewJobDescriptionRepository(db),
	}
}

func (a *Archive) SaveJobs(ctx context.Context, jobs []models.JobSummary) error {
	return a.jobs.SaveJobs(ctx, jobs)
}

func (a *Archive) SaveJobDetail(ctx context.Context, job models.JobDetail) error {
	return a.details.SaveJobDetail(ctx, job)
}
