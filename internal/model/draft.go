package model

import (
	"strings"
	"time"
)

// Draft holds the in-progress project form state. It lives only in memory
// for the lifetime of the form view; nothing is persisted.
//
// List operations are append/remove only. Entries are never reordered or
// edited in place, so milestone IDs and list positions stay stable while
// the user works.
type Draft struct {
	Code        string
	Name        string
	Sector      string
	Description string
	Status      Status
	StartDate   *time.Time
	EndDate     *time.Time
	Manager     string
	Team        []string
	Milestones  []Milestone
	TechStack   []TechGroup
	RepoURL     string
	DocsURL     string
	Notes       string
	Accent      string

	nextMilestoneID int
}

// NewDraft creates an empty draft with a freshly generated unique code
func NewDraft(accent string) *Draft {
	return &Draft{
		Code:            NewCode(time.Now()),
		Status:          StatusPlanning,
		Accent:          accent,
		nextMilestoneID: 1,
	}
}

// AddTeamMember appends a member name to the team. Empty or
// whitespace-only input is a no-op. Duplicates are allowed.
func (d *Draft) AddTeamMember(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	d.Team = append(d.Team, name)
	return true
}

// RemoveTeamMember removes the first team entry matching name
func (d *Draft) RemoveTeamMember(name string) bool {
	for i, member := range d.Team {
		if member == name {
			d.Team = append(d.Team[:i], d.Team[i+1:]...)
			return true
		}
	}
	return false
}

// AddMilestone appends a milestone with the next sequential ID. An empty
// or whitespace-only title is a no-op and returns nil.
func (d *Draft) AddMilestone(title, description string) *Milestone {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	m := Milestone{
		ID:          d.nextMilestoneID,
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	d.nextMilestoneID++
	d.Milestones = append(d.Milestones, m)
	return &m
}

// RemoveMilestone removes the milestone with the given ID
func (d *Draft) RemoveMilestone(id int) bool {
	for i, m := range d.Milestones {
		if m.ID == id {
			d.Milestones = append(d.Milestones[:i], d.Milestones[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleMilestone flips the completion flag of the milestone with the
// given ID
func (d *Draft) ToggleMilestone(id int) bool {
	for i := range d.Milestones {
		if d.Milestones[i].ID == id {
			d.Milestones[i].Completed = !d.Milestones[i].Completed
			return true
		}
	}
	return false
}

// AddTechnology appends a technology to the group for the given category,
// creating the group if it does not exist yet. Entries are not deduped:
// adding the same name twice yields two entries.
func (d *Draft) AddTechnology(category TechCategory, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	for i := range d.TechStack {
		if d.TechStack[i].Category == category {
			d.TechStack[i].Technologies = append(d.TechStack[i].Technologies, name)
			return true
		}
	}

	d.TechStack = append(d.TechStack, TechGroup{
		Category:     category,
		Technologies: []string{name},
	})
	return true
}

// RemoveTechnology removes the first matching technology from the given
// category's group. Removing the last technology removes the group itself.
func (d *Draft) RemoveTechnology(category TechCategory, name string) bool {
	for i := range d.TechStack {
		if d.TechStack[i].Category != category {
			continue
		}
		for j, tech := range d.TechStack[i].Technologies {
			if tech == name {
				d.TechStack[i].Technologies = append(
					d.TechStack[i].Technologies[:j],
					d.TechStack[i].Technologies[j+1:]...,
				)
				if len(d.TechStack[i].Technologies) == 0 {
					d.TechStack = append(d.TechStack[:i], d.TechStack[i+1:]...)
				}
				return true
			}
		}
		return false
	}
	return false
}

// Finalize builds the immutable record for this draft. The draft must
// validate cleanly first; callers are expected to have checked Validate.
// Slices are copied so later draft edits cannot reach the record.
func (d *Draft) Finalize() *Record {
	now := time.Now()

	rec := &Record{
		Code:        d.Code,
		Name:        strings.TrimSpace(d.Name),
		Sector:      strings.TrimSpace(d.Sector),
		Description: strings.TrimSpace(d.Description),
		Status:      d.Status,
		Manager:     strings.TrimSpace(d.Manager),
		RepoURL:     strings.TrimSpace(d.RepoURL),
		DocsURL:     strings.TrimSpace(d.DocsURL),
		Notes:       strings.TrimSpace(d.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if d.StartDate != nil {
		rec.StartDate = *d.StartDate
	}
	if d.EndDate != nil {
		end := *d.EndDate
		rec.EndDate = &end
	}

	rec.Team = append([]string(nil), d.Team...)
	rec.Milestones = append([]Milestone(nil), d.Milestones...)
	for _, g := range d.TechStack {
		rec.TechStack = append(rec.TechStack, TechGroup{
			Category:     g.Category,
			Technologies: append([]string(nil), g.Technologies...),
		})
	}

	return rec
}
