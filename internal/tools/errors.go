package tools

import "errors"

// Prefixes of the error text returned to the caller.
const (
	searchErrorPrefix   = "Error searching for jobs"
	detailsErrorPrefix  = "Error getting job details"
	analysisErrorPrefix = "Error analyzing job fit"
)

var ErrAnalyzerDisabled = errors.New("job fit analysis is not configured")

// ErrorText is the text a failed tool call returns. It never depends on what was logged.
func ErrorText(prefix string, err error) string {
	if err == nil {
		return prefix
	}
	return prefix + ": " + err.Error()
}
