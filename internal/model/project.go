package model

import (
	"time"
)

// Status represents the current state of a project
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses lists the statuses in cycle order
var AllStatuses = []Status{
	StatusPlanning,
	StatusInProgress,
	StatusCompleted,
	StatusOnHold,
	StatusCancelled,
}

// DisplayName returns the user-facing (Portuguese) label for a status.
// The same label is used in the preview card and the generated document.
func (s Status) DisplayName() string {
	switch s {
	case StatusPlanning:
		return "Planejamento"
	case StatusInProgress:
		return "Em Andamento"
	case StatusCompleted:
		return "Concluído"
	case StatusOnHold:
		return "Em Espera"
	case StatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// Next returns the status that follows s in cycle order
func (s Status) Next() Status {
	for i, st := range AllStatuses {
		if st == s {
			return AllStatuses[(i+1)%len(AllStatuses)]
		}
	}
	return StatusPlanning
}

// TechCategory is a fixed category label for tech-stack groups
type TechCategory string

const (
	TechFrontend TechCategory = "Frontend"
	TechBackend  TechCategory = "Backend"
	TechDatabase TechCategory = "Banco de Dados"
	TechMobile   TechCategory = "Mobile"
	TechDevOps   TechCategory = "DevOps"
	TechDesign   TechCategory = "Design"
	TechQA       TechCategory = "QA"
	TechOther    TechCategory = "Outros"
)

// AllTechCategories lists the selectable categories in display order
var AllTechCategories = []TechCategory{
	TechFrontend,
	TechBackend,
	TechDatabase,
	TechMobile,
	TechDevOps,
	TechDesign,
	TechQA,
	TechOther,
}

// Milestone is a project milestone. IDs are sequential and assigned
// client-side when the milestone is added to a draft.
type Milestone struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
}

// TechGroup bundles an ordered list of technology names under one category
type TechGroup struct {
	Category     TechCategory `json:"category"`
	Technologies []string     `json:"technologies"`
}

// Record is the finalized, immutable project snapshot produced at submit
// time. It is the sole input to the document renderer.
type Record struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Sector      string      `json:"sector"`
	Description string      `json:"description,omitempty"`
	Status      Status      `json:"status"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Manager     string      `json:"manager,omitempty"`
	Team        []string    `json:"team,omitempty"`
	Milestones  []Milestone `json:"milestones,omitempty"`
	TechStack   []TechGroup `json:"tech_stack,omitempty"`
	RepoURL     string      `json:"repo_url,omitempty"`
	DocsURL     string      `json:"docs_url,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CompletedMilestones returns how many milestones are marked done
func (r *Record) CompletedMilestones() int {
	count := 0
	for _, m := range r.Milestones {
		if m.Completed {
			count++
		}
	}
	return count
}

// HasLinks returns true if at least one of the URLs is set
func (r *Record) HasLinks() bool {
	return r.RepoURL != "" || r.DocsURL != ""
}
