package schema

import (
	"reflect"
	"testing"
)

func validProjectValues() Values {
	return Values{
		"title":       "Portfolio Site",
		"slug":        "portfolio-site",
		"description": "A personal portfolio built with Go.",
		"tech_stack":  "Go, Gin, SQLite",
		"sort_order":  "2",
	}
}

func TestValidateProjectSuccess(t *testing.T) {
	record, errs := ValidateProject(validProjectValues())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record == nil {
		t.Fatalf("expected a normalized record")
	}
	if record.Title != "Portfolio Site" || record.Slug != "portfolio-site" {
		t.Fatalf("unexpected record: %#v", record)
	}
	if record.SortOrder != 2 {
		t.Fatalf("expected sort order 2, got %d", record.SortOrder)
	}
}

func TestValidateProjectShortTitle(t *testing.T) {
	values := validProjectValues()
	values["title"] = "AB"

	record, errs := ValidateProject(values)
	if record != nil {
		t.Fatalf("expected no record on failure, got %#v", record)
	}
	if len(errs) != 1 {
		t.Fatalf("expected a single error, got %v", errs)
	}
	if errs[0].Field != "title" {
		t.Fatalf("expected title error, got %q", errs[0].Field)
	}
	if errs[0].Message != "Title must be at least 3 characters" {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}

	values["title"] = "ABC"
	if _, errs := ValidateProject(values); len(errs) != 0 {
		t.Fatalf("expected 3-char title to pass, got %v", errs)
	}
}

func TestValidateProjectTechStackNormalization(t *testing.T) {
	values := validProjectValues()
	values["tech_stack"] = "React, Node, , TypeScript"

	record, errs := ValidateProject(values)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	want := []string{"React", "Node", "TypeScript"}
	if !reflect.DeepEqual(record.TechStack, want) {
		t.Fatalf("expected %v, got %v", want, record.TechStack)
	}
}

func TestValidateProjectOptionalURLBlank(t *testing.T) {
	values := validProjectValues()
	values["demo_url"] = "   "

	record, errs := ValidateProject(values)
	if len(errs) != 0 {
		t.Fatalf("expected blank optional URL to be treated as absent, got %v", errs)
	}
	if record.DemoURL != "" {
		t.Fatalf("expected empty demo URL, got %q", record.DemoURL)
	}

	values["demo_url"] = "not a url"
	if _, errs := ValidateProject(values); !errs.Has("demo_url") {
		t.Fatalf("expected demo_url error, got %v", errs)
	}
}

func TestValidateProjectFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(Values)
		field string
	}{
		{name: "missing slug", mut: func(v Values) { v["slug"] = "" }, field: "slug"},
		{name: "uppercase slug", mut: func(v Values) { v["slug"] = "My-Project" }, field: "slug"},
		{name: "missing description", mut: func(v Values) { v["description"] = "" }, field: "description"},
		{name: "bad image url", mut: func(v Values) { v["image_url"] = "nope" }, field: "image_url"},
		{name: "non-numeric sort order", mut: func(v Values) { v["sort_order"] = "abc" }, field: "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validProjectValues()
			tt.mut(values)

			record, errs := ValidateProject(values)
			if record != nil {
				t.Fatalf("expected no record, got %#v", record)
			}
			if !errs.Has(tt.field) {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateProjectSortOrderDefault(t *testing.T) {
	values := validProjectValues()
	delete(values, "sort_order")

	record, errs := ValidateProject(values)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.SortOrder != 0 {
		t.Fatalf("expected default sort order 0, got %d", record.SortOrder)
	}
}

func TestValidateExperience(t *testing.T) {
	record, errs := ValidateExperience(Values{
		"position":   "Backend Engineer",
		"company":    "Acme",
		"period":     "2022 - Present",
		"sort_order": "1",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.Position != "Backend Engineer" || record.SortOrder != 1 {
		t.Fatalf("unexpected record: %#v", record)
	}

	_, errs = ValidateExperience(Values{"position": "Backend Engineer"})
	if !errs.Has("company") || !errs.Has("period") {
		t.Fatalf("expected company and period errors, got %v", errs)
	}
}

func TestValidateSkill(t *testing.T) {
	record, errs := ValidateSkill(Values{"name": "Go", "category": "Backend", "icon_key": " GoLang "})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.IconKey != "golang" {
		t.Fatalf("expected icon key lowered and trimmed, got %q", record.IconKey)
	}

	if _, errs := ValidateSkill(Values{"name": "Go"}); !errs.Has("category") {
		t.Fatalf("expected category error, got %v", errs)
	}
}

func TestValidateCertificate(t *testing.T) {
	record, errs := ValidateCertificate(Values{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issued_at": "2024-11-02",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.CertificateURL != "" {
		t.Fatalf("expected blank certificate URL to stay empty")
	}

	_, errs = ValidateCertificate(Values{
		"name":      "CKA",
		"issuer":    "CNCF",
		"issued_at": "02/11/2024",
	})
	if !errs.Has("issued_at") {
		t.Fatalf("expected issued_at error, got %v", errs)
	}
}

func TestValidateMessage(t *testing.T) {
	record, errs := ValidateMessage(Values{
		"name":     "Ada",
		"email":    "ada@example.com",
		"category": "freelance",
		"budget":   "1k-5k",
		"message":  "I would like to work with you.",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if record.Body != "I would like to work with you." {
		t.Fatalf("unexpected body: %q", record.Body)
	}

	tests := []struct {
		name   string
		values Values
		field  string
	}{
		{name: "bad email", values: Values{"name": "Ada", "email": "nope", "category": "c", "budget": "b", "message": "long enough text"}, field: "email"},
		{name: "short message", values: Values{"name": "Ada", "email": "ada@example.com", "category": "c", "budget": "b", "message": "hi"}, field: "message"},
		{name: "missing name", values: Values{"email": "ada@example.com", "category": "c", "budget": "b", "message": "long enough text"}, field: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, errs := ValidateMessage(tt.values)
			if record != nil {
				t.Fatalf("expected no record, got %#v", record)
			}
			if !errs.Has(tt.field) {
				t.Fatalf("expected error on %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateIdenticalInputYieldsIdenticalErrors(t *testing.T) {
	values := validProjectValues()
	values["title"] = "AB"
	values["image_url"] = "nope"

	_, first := ValidateProject(values)
	_, second := ValidateProject(values)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic errors, got %v then %v", first, second)
	}
}
