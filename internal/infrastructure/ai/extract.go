package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

type CodeScores struct {
	CleanCode      float64 `json:"cleanCode"`
	ProblemSolving float64 `json:"problemSolving"`
	Optimization   float64 `json:"optimization"`
	Documentation  float64 `json:"documentation"`
	Creativity     float64 `json:"creativity"`
}

type CodeAssessment struct {
	Scores       CodeScores `json:"scores"`
	OverallScore float64    `json:"overallScore"`
	Feedback     string     `json:"feedback"`
	Strengths    []string   `json:"strengths"`
	Improvements []string   `json:"improvements"`
	XPAwarded    int        `json:"xpAwarded"`
}

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ExtractCodeAssessment pulls a JSON assessment out of a model response.
// The payload may arrive wrapped in a fenced code block; if no fence is
// found the whole text is treated as JSON. A response that parses as
// neither degrades to the fixed fallback assessment rather than failing;
// the product treats an unreadable review as a conservative pass.
func ExtractCodeAssessment(raw string) CodeAssessment {
	candidate := raw
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	}

	var a CodeAssessment
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &a); err != nil {
		return FallbackCodeAssessment()
	}
	return a
}

// FallbackCodeAssessment is returned whenever the free-text response cannot
// be parsed. The values are fixed conservative defaults.
func FallbackCodeAssessment() CodeAssessment {
	return CodeAssessment{
		Scores: CodeScores{
			CleanCode:      0.7,
			ProblemSolving: 0.7,
			Optimization:   0.6,
			Documentation:  0.5,
			Creativity:     0.6,
		},
		OverallScore: 0.65,
		Feedback:     "Code analysis completed. Unable to parse detailed metrics.",
		Strengths:    []string{"Functional implementation"},
		Improvements: []string{"Add more documentation", "Consider optimization"},
		XPAwarded:    300,
	}
}
