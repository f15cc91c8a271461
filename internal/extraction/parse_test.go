package extraction

import (
	"encoding/json"
	"testing"

	"docextract-backend/internal/resume"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"name":"x"}`, `{"name":"x"}`},
		{"json fence", "```json\n{\"name\":\"x\"}\n```", `{"name":"x"}`},
		{"bare fence", "```\n{\"name\":\"x\"}\n```", `{"name":"x"}`},
		{"uppercase tag", "```JSON\n{\"name\":\"x\"}\n```", `{"name":"x"}`},
		{"surrounding whitespace", "  \n```json\n{\"name\":\"x\"}\n```\n ", `{"name":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.in); got != tc.want {
				t.Fatalf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseResponseStructured(t *testing.T) {
	payload := parseResponse("```json\n{\"name\":\"Jane\"}\n```")
	if resume.IsRawTextFallback(payload) {
		t.Fatalf("expected structured payload")
	}
	if string(payload) != `{"name":"Jane"}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestParseResponseFallsBackToRawText(t *testing.T) {
	text := "Sorry, I could not read that document."
	payload := parseResponse(text)
	if !resume.IsRawTextFallback(payload) {
		t.Fatalf("expected fallback payload")
	}
	var fields map[string]string
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("fallback payload not valid JSON: %v", err)
	}
	if fields["raw_text"] != text {
		t.Fatalf("fallback must carry the original text, got %q", fields["raw_text"])
	}
	if len(fields) != 1 {
		t.Fatalf("fallback must have a single key, got %v", fields)
	}
}

func TestParseResponseKeepsOriginalTextNotStripped(t *testing.T) {
	// When the fenced content still is not JSON, the fallback carries the
	// model's text verbatim, fences included.
	text := "```json\nnot json at all\n```"
	payload := parseResponse(text)
	if !resume.IsRawTextFallback(payload) {
		t.Fatalf("expected fallback payload")
	}
	var fields map[string]string
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("fallback payload not valid JSON: %v", err)
	}
	if fields["raw_text"] != text {
		t.Fatalf("fallback must carry the original text, got %q", fields["raw_text"])
	}
}
