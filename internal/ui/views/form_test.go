package views

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbsouza/projeta/internal/app"
	"github.com/tbsouza/projeta/internal/model"
	"github.com/tbsouza/projeta/internal/palette"
)

func newTestForm(t *testing.T) FormView {
	t.Helper()

	application, err := app.New(&app.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("creating app: %v", err)
	}
	t.Cleanup(func() { application.Close() })

	// notify-send is not available in test environments
	application.Notifier.SetEnabled(false)

	return NewFormView(application, palette.Azul).SetSize(120, 40)
}

// press feeds key events through Update. Single-character strings are
// sent as runes; everything else maps to a named key.
func press(t *testing.T, v FormView, keys ...string) FormView {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "ctrl+e":
			msg = tea.KeyMsg{Type: tea.KeyCtrlE}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}

		updated, _ := v.Update(msg)
		v = updated.(FormView)
	}
	return v
}

// typeText types a string rune by rune into the active input
func typeText(t *testing.T, v FormView, text string) FormView {
	t.Helper()
	for _, r := range text {
		v = press(t, v, string(r))
	}
	return v
}

// goTo moves the field cursor from the top to the given field
func goTo(t *testing.T, v FormView, field formField) FormView {
	t.Helper()
	for i := 0; i < int(field); i++ {
		v = press(t, v, "j")
	}
	if v.cursor != field {
		t.Fatalf("cursor = %d, want %d", v.cursor, field)
	}
	return v
}

func TestAddAndRemoveTeamMember(t *testing.T) {
	v := newTestForm(t)
	code := v.Code()

	v = goTo(t, v, fieldTeam)
	v = press(t, v, "a")
	if !v.IsInputMode() {
		t.Fatal("expected input mode after 'a' on team field")
	}
	v = typeText(t, v, "Ana")
	v = press(t, v, "enter")

	if len(v.draft.Team) != 1 || v.draft.Team[0] != "Ana" {
		t.Fatalf("team = %v, want [Ana]", v.draft.Team)
	}

	// Empty input is a no-op
	v = press(t, v, "a", "enter")
	if len(v.draft.Team) != 1 {
		t.Errorf("team after empty add = %v, want [Ana]", v.draft.Team)
	}

	// Remove returns the list to its prior state
	v = press(t, v, "x")
	if len(v.draft.Team) != 0 {
		t.Errorf("team after remove = %v, want empty", v.draft.Team)
	}

	if v.Code() != code {
		t.Errorf("code changed during edits: %q -> %q", code, v.Code())
	}
}

func TestMilestoneTwoStepAdd(t *testing.T) {
	v := newTestForm(t)

	v = goTo(t, v, fieldMilestones)
	v = press(t, v, "a")
	v = typeText(t, v, "Kickoff")
	v = press(t, v, "enter") // title committed, description prompt opens
	if v.mode != modeMilestoneDesc {
		t.Fatalf("mode = %d, want milestone description prompt", v.mode)
	}
	v = press(t, v, "enter") // empty description

	if len(v.draft.Milestones) != 1 {
		t.Fatalf("milestones = %v, want one entry", v.draft.Milestones)
	}
	m := v.draft.Milestones[0]
	if m.ID != 1 || m.Title != "Kickoff" || m.Completed {
		t.Errorf("milestone = %+v, want ID 1, title Kickoff, not completed", m)
	}

	// Toggle completion on the highlighted milestone
	v = press(t, v, "tab")
	if !v.draft.Milestones[0].Completed {
		t.Error("milestone should be completed after tab")
	}
}

func TestTechAddViaCategorySelector(t *testing.T) {
	v := newTestForm(t)

	v = goTo(t, v, fieldTechStack)
	v = press(t, v, "a")
	if v.mode != modeSelectCategory {
		t.Fatalf("mode = %d, want category selector", v.mode)
	}

	v = press(t, v, "j", "enter") // second category: Backend
	if v.pendingCategory != model.TechBackend {
		t.Fatalf("pending category = %s, want Backend", v.pendingCategory)
	}

	v = typeText(t, v, "Go")
	v = press(t, v, "enter")

	if len(v.draft.TechStack) != 1 {
		t.Fatalf("tech stack = %v, want one group", v.draft.TechStack)
	}
	g := v.draft.TechStack[0]
	if g.Category != model.TechBackend || len(g.Technologies) != 1 || g.Technologies[0] != "Go" {
		t.Errorf("group = %+v, want Backend [Go]", g)
	}
}

func TestEscCancelsInput(t *testing.T) {
	v := newTestForm(t)

	v = press(t, v, "enter") // edit name
	v = typeText(t, v, "abandonado")
	v = press(t, v, "esc")

	if v.IsInputMode() {
		t.Error("still in input mode after esc")
	}
	if v.draft.Name != "" {
		t.Errorf("name = %q, want empty after cancel", v.draft.Name)
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	v := newTestForm(t)

	updated, cmd := v.submit()
	v = updated.(FormView)

	if cmd != nil {
		t.Error("submit with invalid draft should not produce a command")
	}
	if len(v.errors) == 0 {
		t.Fatal("expected validation errors on empty draft")
	}
	if _, ok := v.errors[model.FieldName]; !ok {
		t.Error("missing name error")
	}
	if v.rendering {
		t.Error("rendering should not start on validation failure")
	}
}

func TestGenerateDocumentAndPreviewRelease(t *testing.T) {
	v := newTestForm(t)
	v.draft.Name = "Portal do Cliente"
	v.draft.Sector = "TI"
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v.draft.StartDate = &start

	generate := func(v FormView) FormView {
		updated, cmd := v.submit()
		v = updated.(FormView)
		if cmd == nil {
			t.Fatalf("submit produced no command (errors: %v)", v.errors)
		}
		msg := cmd()
		updated, _ = v.Update(msg)
		return updated.(FormView)
	}

	v = generate(v)
	if v.lastResult == nil {
		t.Fatalf("no result after generation (status: %s)", v.statusMsg)
	}
	if v.lastResult.Pages != 1 {
		t.Errorf("pages = %d, want 1", v.lastResult.Pages)
	}

	firstPreview := v.previewPath
	if _, err := os.Stat(firstPreview); err != nil {
		t.Fatalf("preview file missing: %v", err)
	}

	// A second generation must release the previous preview resource
	v = generate(v)
	if v.previewPath == firstPreview {
		t.Fatal("preview path was not replaced")
	}
	if _, err := os.Stat(firstPreview); !os.IsNotExist(err) {
		t.Errorf("stale preview still present: %v", err)
	}
	if _, err := os.Stat(v.previewPath); err != nil {
		t.Errorf("new preview missing: %v", err)
	}
}

func TestViewRenders(t *testing.T) {
	v := newTestForm(t)
	v.draft.Name = "Sistema de Gestão Financeira Corporativa Avançada"
	v.draft.Sector = "TI"
	v.draft.AddTeamMember("Ana")
	v.draft.AddMilestone("Kickoff", "")

	out := v.View()
	if !strings.Contains(out, "Pré-visualização") {
		t.Error("preview card missing")
	}
	if !strings.Contains(out, "Planejamento") {
		t.Error("status badge missing")
	}
	if !strings.Contains(out, v.Code()) {
		t.Error("unique code missing from preview")
	}
	// The 49-char name is truncated and wrapped, so the full original
	// string never appears
	if strings.Contains(out, v.draft.Name) {
		t.Error("name should be truncated in the preview header")
	}
	if !strings.Contains(out, "1. Kickoff") {
		t.Error("milestone entry missing")
	}
}
