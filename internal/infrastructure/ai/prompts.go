package ai

import "fmt"

// CodeReviewSystemPrompt fixes the scoring rubric and the required output
// shape for the free-text extraction path.
const CodeReviewSystemPrompt = `You are an expert code reviewer specializing in software quality assessment.
Analyze the provided code and rate it on these criteria (0.0 to 1.0 scale):
1. Clean Code: Readability, naming conventions, organization
2. Problem Solving: Logic effectiveness, algorithmic efficiency
3. Optimization: Performance considerations, resource usage
4. Documentation: Comments, clarity of intent
5. Creativity: Innovative approaches, elegant solutions

Return a JSON object with:
{
  "scores": {
    "cleanCode": number,
    "problemSolving": number,
    "optimization": number,
    "documentation": number,
    "creativity": number
  },
  "overallScore": number (average of all scores),
  "feedback": "detailed analysis string",
  "strengths": ["array", "of", "strengths"],
  "improvements": ["array", "of", "suggestions"],
  "xpAwarded": number (100-1000 based on quality)
}`

func BuildCodeReviewPrompt(language, codeSnippet, repoURL string) string {
	return fmt.Sprintf("Analyze this %s code:\n\n%s\n\nRepository: %s", language, codeSnippet, repoURL)
}

const ProfileAnalysisSystemPrompt = "You are an expert technical recruiter and career advisor. Analyze profiles and provide actionable insights."

func BuildProfileAnalysisPrompt(linkedinURL, githubID, githubStatsJSON string) string {
	if linkedinURL == "" {
		linkedinURL = "Not provided"
	}
	if githubID == "" {
		githubID = "Not provided"
	}
	return fmt.Sprintf(`Analyze this developer profile and provide detailed insights:
LinkedIn: %s
GitHub: %s
GitHub Stats: %s

Provide:
1. Resume quality score (0-100)
2. Strengths and weaknesses
3. 3-5 specific recommendations for improvement
4. Skill assessment for: AI/ML, DSA, Communication, SQL
5. Overall feedback

Format as JSON.`, linkedinURL, githubID, githubStatsJSON)
}

// AnalyzeProfileFunction is the declared schema for the profile analysis
// function call. A payload that does not satisfy it is a hard fault.
func AnalyzeProfileFunction() FunctionSchema {
	return FunctionSchema{
		Name:        "analyze_profile",
		Description: "Analyze developer profile and return structured insights",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"resume_score": map[string]any{"type": "number", "description": "Score from 0-100"},
				"feedback":     map[string]any{"type": "string"},
				"recommendations": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"progress": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"AI":            map[string]any{"type": "number"},
						"DSA":           map[string]any{"type": "number"},
						"Communication": map[string]any{"type": "number"},
						"SQL":           map[string]any{"type": "number"},
					},
				},
			},
			"required": []string{"resume_score", "feedback", "recommendations", "progress"},
		},
	}
}

const InterviewEvaluationSystemPrompt = "You are an expert technical interviewer. Evaluate answers critically but constructively."

func BuildInterviewEvaluationPrompt(question, answer, category string) string {
	return fmt.Sprintf(`Evaluate this interview answer:
Question: %s
Answer: %s
Category: %s

Provide:
1. Score (0-100)
2. Detailed feedback on strengths and areas for improvement
3. Specific suggestions to improve the answer

Format as JSON.`, question, answer, category)
}

func EvaluateAnswerFunction() FunctionSchema {
	return FunctionSchema{
		Name:        "evaluate_answer",
		Description: "Evaluate interview answer and return structured feedback",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "number", "description": "Score from 0-100"},
				"feedback": map[string]any{"type": "string"},
				"suggestions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []string{"score", "feedback", "suggestions"},
		},
	}
}
