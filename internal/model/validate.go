package model

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field identifies a draft field for inline validation messages
type Field string

const (
	FieldName        Field = "name"
	FieldSector      Field = "sector"
	FieldDescription Field = "description"
	FieldStartDate   Field = "start_date"
	FieldEndDate     Field = "end_date"
	FieldRepoURL     Field = "repo_url"
	FieldDocsURL     Field = "docs_url"
	FieldNotes       Field = "notes"
)

// Length bounds for free-text fields
const (
	MaxNameLen        = 80
	MaxSectorLen      = 40
	MaxDescriptionLen = 1000
	MaxNotesLen       = 600
)

// ValidationErrors maps offending fields to user-facing messages
type ValidationErrors map[Field]string

// Validate checks the draft against the field constraints. It returns an
// empty map when the draft is ready to be finalized.
func (d *Draft) Validate() ValidationErrors {
	errs := ValidationErrors{}

	name := strings.TrimSpace(d.Name)
	if name == "" {
		errs[FieldName] = "nome é obrigatório"
	} else if utf8.RuneCountInString(name) > MaxNameLen {
		errs[FieldName] = "nome muito longo"
	}

	sector := strings.TrimSpace(d.Sector)
	if sector == "" {
		errs[FieldSector] = "setor é obrigatório"
	} else if utf8.RuneCountInString(sector) > MaxSectorLen {
		errs[FieldSector] = "setor muito longo"
	}

	if utf8.RuneCountInString(d.Description) > MaxDescriptionLen {
		errs[FieldDescription] = "descrição muito longa"
	}
	if utf8.RuneCountInString(d.Notes) > MaxNotesLen {
		errs[FieldNotes] = "observações muito longas"
	}

	if d.StartDate == nil {
		errs[FieldStartDate] = "data de início é obrigatória"
	} else if d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		errs[FieldEndDate] = "término anterior ao início"
	}

	if !validOptionalURL(d.RepoURL) {
		errs[FieldRepoURL] = "URL inválida"
	}
	if !validOptionalURL(d.DocsURL) {
		errs[FieldDocsURL] = "URL inválida"
	}

	return errs
}

// validOptionalURL accepts empty strings and well-formed http(s) URLs
func validOptionalURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
