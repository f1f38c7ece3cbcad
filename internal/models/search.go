package models

// SearchCriteria holds the arguments of the search_jobs tool.
// Optional fields are pointers: nil means the caller did not set them.
type SearchCriteria struct {
	Keywords             string   `json:"keywords" jsonschema:"search keywords, e.g. a job title or skill"`
	LocationName         *string  `json:"locationName,omitempty" jsonschema:"town, city or postcode to search around"`
	Contract             *bool    `json:"contract,omitempty" jsonschema:"only contract roles"`
	Permanent            *bool    `json:"permanent,omitempty" jsonschema:"only permanent roles"`
	FullTime             *bool    `json:"fullTime,omitempty" jsonschema:"only full-time roles"`
	PartTime             *bool    `json:"partTime,omitempty" jsonschema:"only part-time roles"`
	MinimumSalary        *float64 `json:"minimumSalary,omitempty" jsonschema:"lowest acceptable salary"`
	MaximumSalary        *float64 `json:"maximumSalary,omitempty" jsonschema:"highest acceptable salary"`
	DistanceFromLocation *float64 `json:"distanceFromLocation,omitempty" jsonschema:"search radius in miles (Reed default is 10)"`
	ResultsToTake        *int     `json:"resultsToTake,omitempty" jsonschema:"number of results to return (default 25)"`
	ResultsToSkip        *int     `json:"resultsToSkip,omitempty" jsonschema:"number of results to skip"`
}

// JobDetailsQuery holds the arguments of the get_job_details tool.
type JobDetailsQuery struct {
	JobID int64 `json:"jobId" jsonschema:"Reed job identifier"`
}

// JobFitQuery holds the arguments of the analyze_job_fit tool.
type JobFitQuery struct {
	JobID int64  `json:"jobId" jsonschema:"Reed job identifier"`
	CV    string `json:"cv" jsonschema:"full text of the candidate CV"`
}
