package render

import (
	"bytes"
	"errors"
	"testing"

	"docextract-backend/internal/resume"
)

func sampleData() resume.Data {
	return resume.Data{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "+1 555 0100",
		Address: "Berlin, Germany",
		Skills:  []string{"Go", "PostgreSQL", "Kubernetes"},
		Education: []resume.Education{
			{Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: "2014", EndDate: "2017"},
		},
		WorkExperience: []resume.WorkExperience{
			{Company: "Acme GmbH", Title: "Backend Engineer", Description: "Built document pipelines.", StartDate: "2018", EndDate: "2022"},
			{Company: "Globex", Title: "Engineer", Description: "Shipped things.", StartDate: "2022", EndDate: "Present"},
		},
	}
}

// Compression is off, so rendered text is searchable in the output bytes.
func assertContains(t *testing.T, out []byte, want string) {
	t.Helper()
	if !bytes.Contains(out, []byte(want)) {
		t.Fatalf("output does not contain %q", want)
	}
}

func assertNotContains(t *testing.T, out []byte, unwanted string) {
	t.Helper()
	if bytes.Contains(out, []byte(unwanted)) {
		t.Fatalf("output unexpectedly contains %q", unwanted)
	}
}

func TestRenderProfessionalLayout(t *testing.T) {
	out, err := Render(sampleData(), TemplateProfessional)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}

	assertContains(t, out, "JANE DOE")
	assertContains(t, out, "jane@example.com")
	assertContains(t, out, "PROFESSIONAL EXPERIENCE")
	assertContains(t, out, "Acme GmbH")
	assertContains(t, out, "2018 - 2022")
	assertContains(t, out, "EDUCATION")
	assertContains(t, out, "Computer Science")
	assertContains(t, out, "SKILLS")
	assertContains(t, out, "Kubernetes")

	experience := bytes.Index(out, []byte("PROFESSIONAL EXPERIENCE"))
	education := bytes.Index(out, []byte("EDUCATION"))
	skills := bytes.Index(out, []byte("SKILLS"))
	if !(experience < education && education < skills) {
		t.Fatalf("sections out of order: experience=%d education=%d skills=%d", experience, education, skills)
	}
}

func TestRenderProfessionalKeepsExperienceOrder(t *testing.T) {
	out, err := Render(sampleData(), TemplateProfessional)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	first := bytes.Index(out, []byte("Acme GmbH"))
	second := bytes.Index(out, []byte("Globex"))
	if first < 0 || second < 0 || first > second {
		t.Fatalf("experience entries out of input order: %d, %d", first, second)
	}
}

func TestRenderModernLayout(t *testing.T) {
	out, err := Render(sampleData(), TemplateModern)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}

	assertContains(t, out, "Jane Doe")
	assertContains(t, out, "CONTACT")
	assertContains(t, out, "jane@example.com")
	assertContains(t, out, "SKILLS")
	assertContains(t, out, "PostgreSQL")
	assertContains(t, out, "EXPERIENCE")
	assertContains(t, out, "EDUCATION")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	data := sampleData()
	data.Education = nil
	data.Skills = nil

	for _, template := range []string{TemplateProfessional, TemplateModern} {
		out, err := Render(data, template)
		if err != nil {
			t.Fatalf("Render %s: %v", template, err)
		}
		assertNotContains(t, out, "EDUCATION")
		assertNotContains(t, out, "SKILLS")
	}
}

func TestRenderDeterministicForIdenticalInput(t *testing.T) {
	for _, template := range []string{TemplateProfessional, TemplateModern} {
		first, err := Render(sampleData(), template)
		if err != nil {
			t.Fatalf("Render %s: %v", template, err)
		}
		second, err := Render(sampleData(), template)
		if err != nil {
			t.Fatalf("Render %s: %v", template, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("%s output differs across identical renders", template)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(sampleData(), "fancy")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestDateRange(t *testing.T) {
	if got := dateRange("2018", "2022"); got != "2018 - 2022" {
		t.Fatalf("unexpected range: %q", got)
	}
	if got := dateRange("", ""); got != "" {
		t.Fatalf("expected empty range, got %q", got)
	}
	if got := dateRange("2018", ""); got != "2018 - " {
		t.Fatalf("unexpected open range: %q", got)
	}
}
