package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reed-jobs-mcp/internal/models"
)

// JobRepository archives search results in reed_jobs.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) SaveJobs(ctx context.Context, jobs []models.JobSummary) error {
	if len(jobs) == 0 {
		return nil
	}

	// Deduplicate jobs by ID, Postgres rejects two updates of one row in a statement
	jobMap := make(map[int64]models.JobSummary)
	order := make([]int64, 0, len(jobs))
	for _, job := range jobs {
		if _, seen := jobMap[job.JobID]; !seen {
			order = append(order, job.JobID)
		}
		jobMap[job.JobID] = job
	}

	sqlStatement := `
        INSERT INTO reed_jobs (id, title, employer_id, employer, location, minimum_salary, maximum_salary, currency, date_posted, expiration_date, job_url)
        VALUES 
    `

	const columns = 11
	vals := make([]interface{}, 0, len(order)*columns)
	for i, id := range order {
		job := jobMap[id]
		n := i * columns

		if i > 0 {
			sqlStatement += ","
		}
		sqlStatement += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			n+1, n+2, n+3, n+4, n+5, n+6, n+7, n+8, n+9, n+10, n+11)

		vals = append(vals, job.JobID, job.JobTitle, job.EmployerID, job.EmployerName, job.LocationName,
			job.MinimumSalary, job.MaximumSalary, job.Currency, job.Date, job.ExpirationDate, job.JobURL)
	}

	sqlStatement += `
        ON CONFLICT (id) DO UPDATE SET
        title = EXCLUDED.title,
        employer_id = EXCLUDED.employer_id,
        employer = EXCLUDED.employer,
        location = EXCLUDED.location,
        minimum_salary = EXCLUDED.minimum_salary,
        maximum_salary = EXCLUDED.maximum_salary,
        currency = EXCLUDED.currency,
        date_posted = EXCLUDED.date_posted,
        expiration_date = EXCLUDED.expiration_date,
        job_url = EXCLUDED.job_url,
        updated_at = CURRENT_TIMESTAMP
    `

	_, err := r.db.ExecContext(ctx, sqlStatement, vals...)
	if err != nil {
		return fmt.Errorf("error inserting jobs: %w", err)
	}

	return nil
}
