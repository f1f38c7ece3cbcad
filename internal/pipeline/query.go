package pipeline

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/reed-jobs-mcp/internal/models"
)

// DefaultResultsToTake is used when the caller does not ask for a page size.
const DefaultResultsToTake = 25

var ErrMissingKeywords = errors.New("keywords is required")

// BuildSearchQuery maps search criteria onto Reed query parameters.
// Unset optional fields are omitted; boolean flags are only sent when true.
func BuildSearchQuery(c models.SearchCriteria) (url.Values, error) {
	keywords := strings.TrimSpace(c.Keywords)
	if keywords == "" {
		return nil, ErrMissingKeywords
	}

	params := url.Values{}
	params.Set("keywords", keywords)

	if c.LocationName != nil && strings.TrimSpace(*c.LocationName) != "" {
		params.Set("locationName", strings.TrimSpace(*c.LocationName))
	}

	setFlag(params, "contract", c.Contract)
	setFlag(params, "permanent", c.Permanent)
	setFlag(params, "fullTime", c.FullTime)
	setFlag(params, "partTime", c.PartTime)

	setNumber(params, "minimumSalary", c.MinimumSalary)
	setNumber(params, "maximumSalary", c.MaximumSalary)
	setNumber(params, "distanceFromLocation", c.DistanceFromLocation)

	take := DefaultResultsToTake
	if c.ResultsToTake != nil && *c.ResultsToTake != 0 {
		take = *c.ResultsToTake
	}
	params.Set("resultsToTake", strconv.Itoa(take))

	setInt(params, "resultsToSkip", c.ResultsToSkip)

	return params, nil
}

func setFlag(params url.Values, name string, v *bool) {
	if v != nil && *v {
		params.Set(name, "true")
	}
}

func setInt(params url.Values, name string, v *int) {
	if v != nil {
		params.Set(name, strconv.Itoa(*v))
	}
}

// setNumber writes v without a trailing fraction when it is whole.
func setNumber(params url.Values, name string, v *float64) {
	if v != nil {
		params.Set(name, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
