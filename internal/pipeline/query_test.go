package pipeline

import (
	"testing"

	"github.com/reed-jobs-mcp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildSearchQuery_KeywordsOnly(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{Keywords: "engineer"})
	require.NoError(t, err)

	assert.Equal(t, "engineer", params.Get("keywords"))
	assert.Equal(t, "25", params.Get("resultsToTake"))
	assert.Len(t, params, 2)
}

func TestBuildSearchQuery_MissingKeywords(t *testing.T) {
	for _, kw := range []string{"", "   "} {
		_, err := BuildSearchQuery(models.SearchCriteria{Keywords: kw})
		assert.ErrorIs(t, err, ErrMissingKeywords)
	}
}

func TestBuildSearchQuery_FalseFlagsAreOmitted(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{
		Keywords:  "nurse",
		Contract:  ptr(false),
		Permanent: ptr(false),
		FullTime:  nil,
		PartTime:  ptr(false),
	})
	require.NoError(t, err)

	for _, name := range []string{"contract", "permanent", "fullTime", "partTime"} {
		_, present := params[name]
		assert.False(t, present, "%s should not be sent", name)
	}
}

func TestBuildSearchQuery_AllFields(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{
		Keywords:             "  data analyst ",
		LocationName:         ptr("Manchester"),
		Contract:             ptr(true),
		Permanent:            ptr(true),
		FullTime:             ptr(true),
		PartTime:             ptr(true),
		MinimumSalary:        ptr(30000.0),
		MaximumSalary:        ptr(50000.0),
		DistanceFromLocation: ptr(15.0),
		ResultsToTake:        ptr(10),
		ResultsToSkip:        ptr(20),
	})
	require.NoError(t, err)

	assert.Equal(t, "data analyst", params.Get("keywords"))
	assert.Equal(t, "Manchester", params.Get("locationName"))
	assert.Equal(t, "true", params.Get("contract"))
	assert.Equal(t, "true", params.Get("permanent"))
	assert.Equal(t, "true", params.Get("fullTime"))
	assert.Equal(t, "true", params.Get("partTime"))
	assert.Equal(t, "30000", params.Get("minimumSalary"))
	assert.Equal(t, "50000", params.Get("maximumSalary"))
	assert.Equal(t, "15", params.Get("distanceFromLocation"))
	assert.Equal(t, "10", params.Get("resultsToTake"))
	assert.Equal(t, "20", params.Get("resultsToSkip"))
}

func TestBuildSearchQuery_ZeroTakeFallsBackToDefault(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{Keywords: "chef", ResultsToTake: ptr(0), ResultsToSkip: ptr(0)})
	require.NoError(t, err)

	assert.Equal(t, "25", params.Get("resultsToTake"))
	assert.Equal(t, "0", params.Get("resultsToSkip"))
}

func TestBuildSearchQuery_EmptyLocationOmitted(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{Keywords: "chef", LocationName: ptr(" ")})
	require.NoError(t, err)

	_, present := params["locationName"]
	assert.False(t, present)
}

func TestBuildSearchQuery_FractionalBounds(t *testing.T) {
	params, err := BuildSearchQuery(models.SearchCriteria{
		Keywords:             "nurse",
		MinimumSalary:        ptr(12.75),
		DistanceFromLocation: ptr(2.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "12.75", params.Get("minimumSalary"))
	assert.Equal(t, "2.5", params.Get("distanceFromLocation"))
}
