package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eduardolat/openroutergo"
	"github.com/reed-jobs-mcp/internal/models"
)

var ErrMissingCV = errors.New("cv is required")

// JobAnalysisResult represents the structured response from job analysis
type JobAnalysisResult struct {
	Recommendation         string   `json:"recommendation"`
	ConfidenceScore        int      `json:"confidence_score"`
	MatchingSkills         []string `json:"matching_skills"`
	MissingSkills          []string `json:"missing_skills"`
	ExperienceMatch        string   `json:"experience_match"`
	Summary                string   `json:"summary"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
}

// ShouldApply returns true if the recommendation is to apply for the job
func (r *JobAnalysisResult) ShouldApply() bool {
	return r.Recommendation == "apply"
}

// IsHighConfidence returns true if the confidence score is 70 or above
func (r *JobAnalysisResult) IsHighConfidence() bool {
	return r.ConfidenceScore >= 70
}

// Text renders the analysis for a tool response.
func (r *JobAnalysisResult) Text() string {
	var b strings.Builder

	verdict := "Do not apply"
	if r.ShouldApply() {
		verdict = "Apply"
	}
	confidence := "low confidence"
	if r.IsHighConfidence() {
		confidence = "high confidence"
	}

	fmt.Fprintf(&b, "Recommendation: %s (%d/100, %s)\n", verdict, r.ConfidenceScore, confidence)
	fmt.Fprintf(&b, "Experience match: %s\n", orNotSpecified(r.ExperienceMatch))
	fmt.Fprintf(&b, "Matching skills: %s\n", joinOrNone(r.MatchingSkills))
	fmt.Fprintf(&b, "Missing skills: %s\n", joinOrNone(r.MissingSkills))
	fmt.Fprintf(&b, "\nSummary:\n%s\n", orNotSpecified(r.Summary))
	if len(r.ImprovementSuggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, s := range r.ImprovementSuggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	return b.String()
}

type OpenRouterService struct {
	model  string
	apiKey string
}

func NewOpenRouterService(model string, apiKey string) OpenRouterService {
	return OpenRouterService{
		model:  model,
		apiKey: apiKey,
	}
}

const systemMessage = "You are an expert HR assistant specializing in job application analysis. You help candidates determine if they should apply for specific positions based on their CV and the job requirements. Always respond in valid JSON format."

func (s OpenRouterService) AnalyzeJobDescription(cv string, jobDesc models.JobDescription) (*JobAnalysisResult, error) {
	if strings.TrimSpace(cv) == "" {
		return nil, ErrMissingCV
	}

	client, err := openroutergo.
		NewClient().
		WithAPIKey(s.apiKey).
		Create()
	if err != nil {
		return nil, fmt.Errorf("failed to create openrouter client: %w", err)
	}

	_, resp, err := client.
		NewChatCompletion().
		WithModel(s.model).
		WithSystemMessage(systemMessage).
		WithUserMessage(BuildAnalysisPrompt(cv, jobDesc)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to execute completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices received from API")
	}

	return ParseAnalysis(resp.Choices[0].Message.Content)
}

// BuildAnalysisPrompt builds the user message sent to the model.
func BuildAnalysisPrompt(cv string, jobDesc models.JobDescription) string {
	criteria := make([]string, 0, len(jobDesc.Criteria))
	for k, v := range jobDesc.Criteria {
		criteria = append(criteria, k+": "+v)
	}
	sort.Strings(criteria)

	return fmt.Sprintf(`Analyze the following CV against the job description and criteria, then provide a recommendation following the schema below.
	If there are missing skills, try to guess if they still match based on similar skills or experience in the CV.

	CV:
	%s

	Job: %s at %s

	Job Description:
	%s

	Job Criteria:
	%s

	OUTPUT REQUIREMENTS:
	- Return ONLY a single valid JSON object.
	- Do NOT include any markdown, code fences, backticks, or any additional text.
	- Use this exact schema and key names:
	{
	  "recommendation": "apply" | "do_not_apply",
	  "confidence_score": number,  // integer 0-100
	  "matching_skills": [string],
	  "missing_skills": [string],
	  "experience_match": "excellent" | "good" | "fair" | "poor",
	  "summary": string,
	  "improvement_suggestions": [string]
	}`, cv, jobDesc.Title, jobDesc.Employer, jobDesc.Description, strings.Join(criteria, "\n\t"))
}

// ParseAnalysis decodes the model reply, tolerating a surrounding markdown code fence.
func ParseAnalysis(content string) (*JobAnalysisResult, error) {
	jsonContent := strings.TrimSpace(content)
	if strings.HasPrefix(jsonContent, "```") {
		jsonContent = strings.TrimPrefix(jsonContent, "```json")
		jsonContent = strings.TrimPrefix(jsonContent, "```")
		jsonContent = strings.TrimSuffix(strings.TrimSpace(jsonContent), "```")
	}

	var result JobAnalysisResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(jsonContent)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return &result, nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
