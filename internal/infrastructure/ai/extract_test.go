package ai

import (
	"reflect"
	"testing"
)

func TestExtractCodeAssessment_FencedBlock(t *testing.T) {
	raw := "Here is the review:\n```json\n{\"scores\":{\"cleanCode\":0.9,\"problemSolving\":0.8,\"optimization\":0.7,\"documentation\":0.6,\"creativity\":0.5},\"overallScore\":0.7,\"feedback\":\"solid\",\"strengths\":[\"clear\"],\"improvements\":[\"docs\"],\"xpAwarded\":450}\n```\nDone."

	a := ExtractCodeAssessment(raw)
	if a.Scores.CleanCode != 0.9 {
		t.Fatalf("expected cleanCode 0.9, got %v", a.Scores.CleanCode)
	}
	if a.OverallScore != 0.7 {
		t.Fatalf("expected overallScore 0.7, got %v", a.OverallScore)
	}
	if a.XPAwarded != 450 {
		t.Fatalf("expected xpAwarded 450, got %d", a.XPAwarded)
	}
	if a.Feedback != "solid" {
		t.Fatalf("unexpected feedback: %q", a.Feedback)
	}
}

func TestExtractCodeAssessment_BareFence(t *testing.T) {
	raw := "```\n{\"scores\":{\"cleanCode\":0.5,\"problemSolving\":0.5,\"optimization\":0.5,\"documentation\":0.5,\"creativity\":0.5},\"overallScore\":0.5,\"feedback\":\"ok\",\"strengths\":[],\"improvements\":[],\"xpAwarded\":200}\n```"

	a := ExtractCodeAssessment(raw)
	if a.OverallScore != 0.5 || a.XPAwarded != 200 {
		t.Fatalf("unexpected assessment: %+v", a)
	}
}

func TestExtractCodeAssessment_WholeTextJSON(t *testing.T) {
	raw := `{"scores":{"cleanCode":1,"problemSolving":1,"optimization":1,"documentation":1,"creativity":1},"overallScore":1,"feedback":"perfect","strengths":["all"],"improvements":[],"xpAwarded":1000}`

	a := ExtractCodeAssessment(raw)
	if a.OverallScore != 1 || a.XPAwarded != 1000 {
		t.Fatalf("unexpected assessment: %+v", a)
	}
}

func TestExtractCodeAssessment_UnparseableFallsBack(t *testing.T) {
	a := ExtractCodeAssessment("I could not review this code, sorry.")

	want := FallbackCodeAssessment()
	if !reflect.DeepEqual(a, want) {
		t.Fatalf("expected fallback assessment, got %+v", a)
	}
	if a.Scores.CleanCode != 0.7 || a.Scores.Documentation != 0.5 {
		t.Fatalf("fallback scores drifted: %+v", a.Scores)
	}
	if a.OverallScore != 0.65 || a.XPAwarded != 300 {
		t.Fatalf("fallback totals drifted: %+v", a)
	}
}

func TestExtractCodeAssessment_MalformedFencedFallsBack(t *testing.T) {
	a := ExtractCodeAssessment("```json\n{\"scores\": oops}\n```")
	if !reflect.DeepEqual(a, FallbackCodeAssessment()) {
		t.Fatalf("expected fallback for malformed fenced JSON, got %+v", a)
	}
}
