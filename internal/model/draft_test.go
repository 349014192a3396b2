package model

import (
	"testing"
	"time"
)

func TestTeamAddRemoveIsInverse(t *testing.T) {
	d := NewDraft("Azul")
	d.AddTeamMember("Ana")
	d.AddTeamMember("Bruno")

	before := append([]string(nil), d.Team...)

	if !d.AddTeamMember("Carla") {
		t.Fatal("AddTeamMember returned false for valid name")
	}
	if !d.RemoveTeamMember("Carla") {
		t.Fatal("RemoveTeamMember returned false for existing member")
	}

	if len(d.Team) != len(before) {
		t.Fatalf("team length = %d, want %d", len(d.Team), len(before))
	}
	for i, member := range before {
		if d.Team[i] != member {
			t.Errorf("team[%d] = %q, want %q", i, d.Team[i], member)
		}
	}
}

func TestTeamEmptyInputIsNoop(t *testing.T) {
	d := NewDraft("Azul")

	if d.AddTeamMember("") {
		t.Error("adding empty name should be a no-op")
	}
	if d.AddTeamMember("   ") {
		t.Error("adding whitespace-only name should be a no-op")
	}
	if len(d.Team) != 0 {
		t.Errorf("team length = %d, want 0", len(d.Team))
	}
}

func TestTeamAllowsDuplicates(t *testing.T) {
	d := NewDraft("Azul")
	d.AddTeamMember("Ana")
	d.AddTeamMember("Ana")

	if len(d.Team) != 2 {
		t.Fatalf("team length = %d, want 2 (duplicates allowed)", len(d.Team))
	}

	d.RemoveTeamMember("Ana")
	if len(d.Team) != 1 {
		t.Errorf("team length after one removal = %d, want 1", len(d.Team))
	}
}

func TestMilestoneIDsAreSequential(t *testing.T) {
	d := NewDraft("Azul")

	m1 := d.AddMilestone("Kickoff", "")
	m2 := d.AddMilestone("Entrega", "fase 1")

	if m1.ID != 1 || m2.ID != 2 {
		t.Fatalf("milestone IDs = %d, %d, want 1, 2", m1.ID, m2.ID)
	}

	// IDs keep growing after a removal; they are never reused
	d.RemoveMilestone(m2.ID)
	m3 := d.AddMilestone("Homologação", "")
	if m3.ID != 3 {
		t.Errorf("milestone ID after removal = %d, want 3", m3.ID)
	}
}

func TestMilestoneEmptyTitleIsNoop(t *testing.T) {
	d := NewDraft("Azul")
	if m := d.AddMilestone("  ", "desc"); m != nil {
		t.Error("whitespace-only title should be a no-op")
	}
	if len(d.Milestones) != 0 {
		t.Errorf("milestones length = %d, want 0", len(d.Milestones))
	}
}

func TestMilestoneRemoveAndToggle(t *testing.T) {
	d := NewDraft("Azul")
	m1 := d.AddMilestone("Kickoff", "")
	m2 := d.AddMilestone("Entrega", "")

	if !d.ToggleMilestone(m1.ID) {
		t.Fatal("ToggleMilestone returned false")
	}
	if !d.Milestones[0].Completed {
		t.Error("milestone 1 should be completed after toggle")
	}

	if !d.RemoveMilestone(m1.ID) {
		t.Fatal("RemoveMilestone returned false")
	}
	if len(d.Milestones) != 1 || d.Milestones[0].ID != m2.ID {
		t.Errorf("remaining milestones = %+v, want only ID %d", d.Milestones, m2.ID)
	}

	if d.RemoveMilestone(99) {
		t.Error("removing unknown ID should return false")
	}
}

func TestTechGroupCreateAndAppend(t *testing.T) {
	d := NewDraft("Azul")

	d.AddTechnology(TechFrontend, "React")
	if len(d.TechStack) != 1 {
		t.Fatalf("groups = %d, want 1", len(d.TechStack))
	}
	if len(d.TechStack[0].Technologies) != 1 {
		t.Fatalf("entries = %d, want 1", len(d.TechStack[0].Technologies))
	}

	d.AddTechnology(TechFrontend, "Vue")
	if len(d.TechStack) != 1 {
		t.Fatalf("groups after second add = %d, want 1", len(d.TechStack))
	}
	got := d.TechStack[0].Technologies
	if len(got) != 2 || got[0] != "React" || got[1] != "Vue" {
		t.Errorf("entries = %v, want [React Vue] in order", got)
	}
}

func TestTechRemoveLastRemovesGroup(t *testing.T) {
	d := NewDraft("Azul")
	d.AddTechnology(TechBackend, "Go")
	d.AddTechnology(TechFrontend, "React")
	d.AddTechnology(TechFrontend, "Vue")

	// Non-last removal keeps the group with the remainder
	d.RemoveTechnology(TechFrontend, "React")
	if len(d.TechStack) != 2 {
		t.Fatalf("groups = %d, want 2", len(d.TechStack))
	}
	for _, g := range d.TechStack {
		if g.Category == TechFrontend {
			if len(g.Technologies) != 1 || g.Technologies[0] != "Vue" {
				t.Errorf("frontend entries = %v, want [Vue]", g.Technologies)
			}
		}
	}

	// Removing the last entry removes the whole group
	d.RemoveTechnology(TechBackend, "Go")
	if len(d.TechStack) != 1 {
		t.Fatalf("groups after last removal = %d, want 1", len(d.TechStack))
	}
	if d.TechStack[0].Category != TechFrontend {
		t.Errorf("remaining group = %s, want Frontend", d.TechStack[0].Category)
	}
}

func TestTechDuplicatesPreserved(t *testing.T) {
	d := NewDraft("Azul")
	d.AddTechnology(TechBackend, "Go")
	d.AddTechnology(TechBackend, "Go")

	if len(d.TechStack[0].Technologies) != 2 {
		t.Fatalf("entries = %d, want 2 (no dedupe on add)", len(d.TechStack[0].Technologies))
	}

	d.RemoveTechnology(TechBackend, "Go")
	if len(d.TechStack) != 1 || len(d.TechStack[0].Technologies) != 1 {
		t.Error("removing one duplicate should leave the other")
	}
}

func TestCodeStableForSession(t *testing.T) {
	d := NewDraft("Azul")
	code := d.Code

	d.Name = "Projeto X"
	d.AddTeamMember("Ana")
	d.AddMilestone("Kickoff", "")
	d.Status = StatusInProgress

	if d.Code != code {
		t.Errorf("code changed from %q to %q after edits", code, d.Code)
	}

	start := time.Now()
	d.StartDate = &start
	rec := d.Finalize()
	if rec.Code != code {
		t.Errorf("finalized code = %q, want %q", rec.Code, code)
	}
}

func TestFinalizeCopiesSlices(t *testing.T) {
	d := NewDraft("Verde")
	d.Name = "Projeto"
	d.Sector = "TI"
	start := time.Now()
	d.StartDate = &start
	d.AddTeamMember("Ana")
	d.AddMilestone("Kickoff", "")
	d.AddTechnology(TechBackend, "Go")

	rec := d.Finalize()

	// Later draft edits must not reach the record
	d.AddTeamMember("Bruno")
	d.ToggleMilestone(1)
	d.AddTechnology(TechBackend, "Postgres")

	if len(rec.Team) != 1 {
		t.Errorf("record team = %v, want [Ana]", rec.Team)
	}
	if rec.Milestones[0].Completed {
		t.Error("record milestone mutated by draft toggle")
	}
	if len(rec.TechStack[0].Technologies) != 1 {
		t.Errorf("record tech entries = %v, want [Go]", rec.TechStack[0].Technologies)
	}
}

func TestStatusDisplayNames(t *testing.T) {
	cases := map[Status]string{
		StatusPlanning:   "Planejamento",
		StatusInProgress: "Em Andamento",
		StatusCompleted:  "Concluído",
		StatusOnHold:     "Em Espera",
		StatusCancelled:  "Cancelado",
	}
	for status, want := range cases {
		if got := status.DisplayName(); got != want {
			t.Errorf("%s.DisplayName() = %q, want %q", status, got, want)
		}
	}
}
