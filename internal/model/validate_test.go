package model

import (
	"strings"
	"testing"
	"time"
)

func validDraft() *Draft {
	d := NewDraft("Azul")
	d.Name = "Projeto"
	d.Sector = "TI"
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d.StartDate = &start
	return d
}

func TestValidateCleanDraft(t *testing.T) {
	if errs := validDraft().Validate(); len(errs) != 0 {
		t.Errorf("valid draft produced errors: %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	d := NewDraft("Azul")
	errs := d.Validate()

	for _, field := range []Field{FieldName, FieldSector, FieldStartDate} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for required field %s", field)
		}
	}
}

func TestValidateLengthBounds(t *testing.T) {
	d := validDraft()
	d.Name = strings.Repeat("a", MaxNameLen+1)
	d.Description = strings.Repeat("b", MaxDescriptionLen+1)
	d.Notes = strings.Repeat("c", MaxNotesLen+1)

	errs := d.Validate()
	for _, field := range []Field{FieldName, FieldDescription, FieldNotes} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for overlong field %s", field)
		}
	}
}

func TestValidateEndBeforeStart(t *testing.T) {
	d := validDraft()
	end := d.StartDate.AddDate(0, 0, -1)
	d.EndDate = &end

	if _, ok := d.Validate()[FieldEndDate]; !ok {
		t.Error("end date before start date should be rejected")
	}
}

func TestValidateURLs(t *testing.T) {
	cases := []struct {
		url string
		ok  bool
	}{
		{"", true},
		{"https://github.com/org/repo", true},
		{"http://wiki.interno", true},
		{"ftp://server/file", false},
		{"github.com/org/repo", false},
		{"https://", false},
		{"not a url", false},
	}

	for _, tc := range cases {
		d := validDraft()
		d.RepoURL = tc.url
		_, hasErr := d.Validate()[FieldRepoURL]
		if hasErr == tc.ok {
			t.Errorf("url %q: hasErr=%v, want ok=%v", tc.url, hasErr, tc.ok)
		}
	}
}
