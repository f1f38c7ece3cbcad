package models

// JobSummary is one listing as returned by the Reed search endpoint.
type JobSummary struct {
	JobID          int64    `json:"jobId"`
	EmployerID     int64    `json:"employerId"`
	EmployerName   string   `json:"employerName"`
	JobTitle       string   `json:"jobTitle"`
	LocationName   string   `json:"locationName"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	Currency       string   `json:"currency"`
	ExpirationDate string   `json:"expirationDate"`
	Date           string   `json:"date"`           // Posting date, dd/mm/yyyy
	JobDescription string   `json:"jobDescription"` // Snippet, may contain HTML
	Applications   int      `json:"applications"`
	JobURL         string   `json:"jobUrl"`
}

// SearchResponse wraps the results list of the search endpoint.
type SearchResponse struct {
	Results      []JobSummary `json:"results"`
	TotalResults int          `json:"totalResults"`
}

// JobDetail is the single record returned by the job details endpoint.
type JobDetail struct {
	JobID               int64    `json:"jobId"`
	EmployerID          int64    `json:"employerId"`
	EmployerName        string   `json:"employerName"`
	JobTitle            string   `json:"jobTitle"`
	LocationName        string   `json:"locationName"`
	MinimumSalary       *float64 `json:"minimumSalary"`
	MaximumSalary       *float64 `json:"maximumSalary"`
	YearlyMinimumSalary *float64 `json:"yearlyMinimumSalary"`
	YearlyMaximumSalary *float64 `json:"yearlyMaximumSalary"`
	Currency            string   `json:"currency"`
	SalaryType          string   `json:"salaryType"`
	ContractType        string   `json:"contractType"`
	JobType             string   `json:"jobType"`
	DatePosted          string   `json:"datePosted"`
	ExpirationDate      string   `json:"expirationDate"`
	JobDescription      string   `json:"jobDescription"` // HTML
	ApplicationCount    int      `json:"applicationCount"`
	JobURL              string   `json:"jobUrl"`
	ExternalURL         string   `json:"externalUrl"`
}

// JobDescription is the plain-text description handed to the fit analyzer.
type JobDescription struct {
	JobID       int64
	Title       string
	Employer    string
	Description string
	Criteria    map[string]string
}
