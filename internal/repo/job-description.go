package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/reed-jobs-mcp/internal/models"
)

// JobDescriptionRepository archives job details in reed_job_details.
type JobDescriptionRepository struct {
	db *sql.DB
}

func NewJobDescriptionRepository(db *sql.DB) *JobDescriptionRepository {
	return &JobDescriptionRepository{db: db}
}

func (r *JobDescriptionRepository) SaveJobDetail(ctx context.Context, job models.JobDetail) error {
	sqlStatement := `
		INSERT INTO reed_job_details (job_id, title, employer, location, description, contract_type, job_type, salary_type, minimum_salary, maximum_salary, currency, expiration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (job_id) DO UPDATE SET
		title = EXCLUDED.title,
		employer = EXCLUDED.employer,
		location = EXCLUDED.location,
		description = EXCLUDED.description,
		contract_type = EXCLUDED.contract_type,
		job_type = EXCLUDED.job_type,
		salary_type = EXCLUDED.salary_type,
		minimum_salary = EXCLUDED.minimum_salary,
		maximum_salary = EXCLUDED.maximum_salary,
		currency = EXCLUDED.currency,
		expiration_date = EXCLUDED.expiration_date,
		updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, sqlStatement,
		job.JobID, job.JobTitle, job.EmployerName, job.LocationName, job.JobDescription,
		job.ContractType, job.JobType, job.SalaryType, job.MinimumSalary, job.MaximumSalary,
		job.Currency, job.ExpirationDate)
	if err != nil {
		return fmt.Errorf("error saving job detail %d: %w", job.JobID, err)
	}

	return nil
}
