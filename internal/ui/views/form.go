package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tbsouza/projeta/internal/app"
	"github.com/tbsouza/projeta/internal/docgen"
	"github.com/tbsouza/projeta/internal/model"
	"github.com/tbsouza/projeta/internal/palette"
	"github.com/tbsouza/projeta/internal/scancode"
	"github.com/tbsouza/projeta/internal/ui/theme"
)

// formMode tracks what kind of input the form is currently capturing
type formMode int

const (
	modeBrowse formMode = iota
	modeInput          // single-line edit of the focused field
	modeArea           // multi-line edit (description, notes)
	modeTeamName       // add team member
	modeMilestoneTitle // add milestone, step 1
	modeMilestoneDesc  // add milestone, step 2
	modeSelectCategory // pick tech category
	modeTechName       // add technology, step 2
)

// formField identifies a row of the form, in display order
type formField int

const (
	fieldName formField = iota
	fieldSector
	fieldDescription
	fieldStatus
	fieldStartDate
	fieldEndDate
	fieldManager
	fieldTeam
	fieldMilestones
	fieldTechStack
	fieldRepoURL
	fieldDocsURL
	fieldNotes
	fieldAccent
	fieldCount
)

func (f formField) label() string {
	switch f {
	case fieldName:
		return "Nome"
	case fieldSector:
		return "Setor"
	case fieldDescription:
		return "Descrição"
	case fieldStatus:
		return "Status"
	case fieldStartDate:
		return "Início"
	case fieldEndDate:
		return "Término"
	case fieldManager:
		return "Gerente"
	case fieldTeam:
		return "Equipe"
	case fieldMilestones:
		return "Marcos"
	case fieldTechStack:
		return "Stack"
	case fieldRepoURL:
		return "Repositório"
	case fieldDocsURL:
		return "Documentação"
	case fieldNotes:
		return "Observações"
	case fieldAccent:
		return "Cor"
	default:
		return "?"
	}
}

// isList reports whether the field holds an item list with a sub-cursor
func (f formField) isList() bool {
	return f == fieldTeam || f == fieldMilestones || f == fieldTechStack
}

// validationField maps a form row to its model validation key
func (f formField) validationField() (model.Field, bool) {
	switch f {
	case fieldName:
		return model.FieldName, true
	case fieldSector:
		return model.FieldSector, true
	case fieldDescription:
		return model.FieldDescription, true
	case fieldStartDate:
		return model.FieldStartDate, true
	case fieldEndDate:
		return model.FieldEndDate, true
	case fieldRepoURL:
		return model.FieldRepoURL, true
	case fieldDocsURL:
		return model.FieldDocsURL, true
	case fieldNotes:
		return model.FieldNotes, true
	}
	return "", false
}

// AccentSelectedMsg tells the root model the user picked another accent
type AccentSelectedMsg struct {
	Accent palette.Accent
}

// documentRenderedMsg carries the outcome of a document generation
type documentRenderedMsg struct {
	result      *docgen.Result
	previewPath string
	elapsed     time.Duration
	err         error
}

// techEntry is one flattened tech-stack item for sub-cursor navigation
type techEntry struct {
	category model.TechCategory
	name     string
}

// FormView is the single-page project form with its live preview card
type FormView struct {
	app    *app.App
	width  int
	height int

	draft     *model.Draft
	sessionID string

	cursor     formField
	itemCursor int
	mode       formMode

	input textinput.Model
	area  textarea.Model

	errors    model.ValidationErrors
	statusMsg string

	// Two-step adds
	pendingMilestoneTitle string
	categoryCursor        int
	pendingCategory       model.TechCategory

	// Scannable-code preview, rendered once (the code is session-stable)
	qrPreview string

	// Last generated document
	rendering   bool
	lastResult  *docgen.Result
	previewPath string
}

// NewFormView creates the form view with a fresh draft. The unique code
// is generated here and never changes for the session.
func NewFormView(application *app.App, accent palette.Accent) FormView {
	ti := textinput.New()
	ti.CharLimit = 256

	ta := textarea.New()
	ta.CharLimit = model.MaxDescriptionLen
	ta.SetHeight(4)

	draft := model.NewDraft(accent.Name)

	v := FormView{
		app:       application,
		draft:     draft,
		sessionID: uuid.New().String(),
		input:     ti,
		area:      ta,
		errors:    model.ValidationErrors{},
	}
	v.qrPreview = buildQRPreview(application, draft.Code)

	application.Logger.Info().
		Str("session", v.sessionID).
		Str("code", draft.Code).
		Msg("draft created")

	return v
}

// buildQRPreview renders the small half-block scannable code shown on
// the preview card. An encoder failure here only degrades the preview;
// it is logged and the card falls back to the plain code text.
func buildQRPreview(application *app.App, code string) string {
	matrix, err := scancode.Matrix(code)
	if err != nil {
		application.Logger.Error().Err(err).Msg("preview scancode failed")
		return ""
	}
	return renderMatrix(matrix)
}

// renderMatrix draws a module matrix as half-block cells, two module
// rows per terminal line
func renderMatrix(matrix [][]bool) string {
	var b strings.Builder
	for y := 0; y < len(matrix); y += 2 {
		for x := 0; x < len(matrix[y]); x++ {
			top := matrix[y][x]
			bottom := false
			if y+1 < len(matrix) {
				bottom = matrix[y+1][x]
			}
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < len(matrix) {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// Init initializes the form view
func (v FormView) Init() tea.Cmd {
	return nil
}

// IsInputMode returns true when the view is capturing text input
func (v FormView) IsInputMode() bool {
	return v.mode != modeBrowse
}

// SetSize updates the view dimensions
func (v FormView) SetSize(width, height int) FormView {
	v.width = width
	v.height = height
	v.input.Width = v.formWidth() - 6
	v.area.SetWidth(v.formWidth() - 4)
	return v
}

// Code returns the session-stable unique project code
func (v FormView) Code() string {
	return v.draft.Code
}

// Accent returns the currently selected accent
func (v FormView) Accent() palette.Accent {
	if a, ok := palette.ByName(v.draft.Accent); ok {
		return a
	}
	return palette.Default
}

// CycleAccent advances the accent color and keeps the draft in sync
func (v FormView) CycleAccent() (FormView, palette.Accent) {
	next := palette.Next(v.draft.Accent)
	v.draft.Accent = next.Name
	theme.SetAccent(next)
	return v, next
}

// formWidth is the width of the form column; the preview card gets the rest
func (v FormView) formWidth() int {
	w := v.width * 55 / 100
	if w < 44 {
		w = 44
	}
	return w
}

// Update handles messages for the form view
func (v FormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case documentRenderedMsg:
		v.rendering = false
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("Erro ao gerar documento: %v", msg.err)
			v.app.Logger.Error().Err(msg.err).Msg("document render failed")
			if err := v.app.Notifier.SendRenderFailed(v.draft.Name); err != nil {
				v.app.Logger.Debug().Err(err).Msg("notification failed")
			}
			return v, nil
		}

		// Release the previously displayed preview before replacing it
		if v.previewPath != "" && v.previewPath != msg.previewPath {
			if err := os.Remove(v.previewPath); err != nil && !os.IsNotExist(err) {
				v.app.Logger.Warn().Err(err).Msg("removing stale preview")
			}
		}
		v.previewPath = msg.previewPath
		v.lastResult = msg.result
		v.statusMsg = fmt.Sprintf("Documento gerado: %s", msg.result.Path)

		v.app.Logger.Info().
			Str("code", v.draft.Code).
			Str("path", msg.result.Path).
			Int("pages", msg.result.Pages).
			Int("bytes", len(msg.result.Bytes)).
			Dur("elapsed", msg.elapsed).
			Msg("document generated")

		if err := v.app.Notifier.SendDocumentReady(v.draft.Name, msg.result.Path, msg.result.Pages); err != nil {
			v.app.Logger.Debug().Err(err).Msg("notification failed")
		}
		return v, nil

	case tea.KeyMsg:
		if v.mode != modeBrowse {
			return v.updateInput(msg)
		}
		return v.updateBrowse(msg)
	}

	return v, nil
}

// updateBrowse handles keys while no input is being captured
func (v FormView) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.statusMsg = ""

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.itemCursor = 0
		}

	case "down", "j":
		if v.cursor < fieldCount-1 {
			v.cursor++
			v.itemCursor = 0
		}

	case "left", "h":
		switch v.cursor {
		case fieldStatus:
			v.draft.Status = prevStatus(v.draft.Status)
		case fieldAccent:
			return v.selectAccent(prevAccent(v.draft.Accent))
		default:
			if v.cursor.isList() && v.itemCursor > 0 {
				v.itemCursor--
			}
		}

	case "right", "l":
		switch v.cursor {
		case fieldStatus:
			v.draft.Status = v.draft.Status.Next()
		case fieldAccent:
			return v.selectAccent(palette.Next(v.draft.Accent))
		default:
			if v.cursor.isList() && v.itemCursor < v.listLen()-1 {
				v.itemCursor++
			}
		}

	case "enter":
		return v.beginEdit()

	case "a":
		if v.cursor.isList() {
			return v.beginEdit()
		}

	case "x":
		v.removeCurrentItem()

	case "tab":
		if v.cursor == fieldMilestones && v.itemCursor < len(v.draft.Milestones) {
			v.draft.ToggleMilestone(v.draft.Milestones[v.itemCursor].ID)
		}

	case "ctrl+e":
		return v.submit()

	case "o":
		if v.lastResult != nil && v.lastResult.Path != "" {
			path := v.lastResult.Path
			return v, func() tea.Msg {
				if err := docgen.OpenViewer(path); err != nil {
					return documentRenderedMsg{err: err}
				}
				return nil
			}
		}
		v.statusMsg = "Nenhum documento gerado ainda"
	}

	return v, nil
}

// beginEdit switches into the right input mode for the focused field
func (v FormView) beginEdit() (tea.Model, tea.Cmd) {
	switch v.cursor {
	case fieldDescription:
		v.mode = modeArea
		v.area.CharLimit = model.MaxDescriptionLen
		v.area.Placeholder = "Descrição do projeto..."
		v.area.SetValue(v.draft.Description)
		v.area.Focus()
		return v, textarea.Blink

	case fieldNotes:
		v.mode = modeArea
		v.area.CharLimit = model.MaxNotesLen
		v.area.Placeholder = "Observações..."
		v.area.SetValue(v.draft.Notes)
		v.area.Focus()
		return v, textarea.Blink

	case fieldStatus:
		v.draft.Status = v.draft.Status.Next()
		return v, nil

	case fieldAccent:
		return v.selectAccent(palette.Next(v.draft.Accent))

	case fieldTeam:
		return v.openInput(modeTeamName, "Nome do integrante...", "")

	case fieldMilestones:
		return v.openInput(modeMilestoneTitle, "Título do marco...", "")

	case fieldTechStack:
		v.mode = modeSelectCategory
		v.categoryCursor = 0
		return v, nil

	default:
		return v.openInput(modeInput, v.inputPlaceholder(), v.fieldValue(v.cursor))
	}
}

func (v FormView) openInput(mode formMode, placeholder, value string) (tea.Model, tea.Cmd) {
	v.mode = mode
	v.input.Placeholder = placeholder
	v.input.SetValue(value)
	v.input.CursorEnd()
	v.input.Focus()
	return v, textinput.Blink
}

func (v FormView) inputPlaceholder() string {
	switch v.cursor {
	case fieldStartDate, fieldEndDate:
		return "AAAA-MM-DD"
	case fieldRepoURL, fieldDocsURL:
		return "https://..."
	default:
		return v.cursor.label() + "..."
	}
}

// fieldValue returns the current raw value of a scalar field
func (v FormView) fieldValue(f formField) string {
	switch f {
	case fieldName:
		return v.draft.Name
	case fieldSector:
		return v.draft.Sector
	case fieldStartDate:
		return formatDate(v.draft.StartDate)
	case fieldEndDate:
		return formatDate(v.draft.EndDate)
	case fieldManager:
		return v.draft.Manager
	case fieldRepoURL:
		return v.draft.RepoURL
	case fieldDocsURL:
		return v.draft.DocsURL
	default:
		return ""
	}
}

// updateInput handles keys while an input, textarea or selector is active
func (v FormView) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.mode == modeSelectCategory {
		switch msg.String() {
		case "esc":
			v.mode = modeBrowse
		case "up", "k":
			if v.categoryCursor > 0 {
				v.categoryCursor--
			}
		case "down", "j":
			if v.categoryCursor < len(model.AllTechCategories)-1 {
				v.categoryCursor++
			}
		case "enter":
			v.pendingCategory = model.AllTechCategories[v.categoryCursor]
			return v.openInput(modeTechName, "Tecnologia...", "")
		}
		return v, nil
	}

	if v.mode == modeArea {
		switch msg.String() {
		case "esc":
			v.mode = modeBrowse
			v.area.Blur()
			return v, nil
		case "ctrl+d":
			// Commit the textarea
			value := v.area.Value()
			if v.cursor == fieldDescription {
				v.draft.Description = value
			} else {
				v.draft.Notes = value
			}
			v.clearFieldError(v.cursor)
			v.mode = modeBrowse
			v.area.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.area, cmd = v.area.Update(msg)
		return v, cmd
	}

	switch msg.String() {
	case "esc":
		v.mode = modeBrowse
		v.input.Blur()
		v.pendingMilestoneTitle = ""
		return v, nil

	case "enter":
		return v.commitInput()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// commitInput applies the text input value according to the active mode
func (v FormView) commitInput() (tea.Model, tea.Cmd) {
	value := v.input.Value()
	trimmed := strings.TrimSpace(value)

	switch v.mode {
	case modeTeamName:
		// Empty input is a no-op; stay out of the list either way
		v.draft.AddTeamMember(value)
		v.mode = modeBrowse
		v.input.Blur()

	case modeMilestoneTitle:
		if trimmed == "" {
			v.mode = modeBrowse
			v.input.Blur()
			return v, nil
		}
		v.pendingMilestoneTitle = trimmed
		return v.openInput(modeMilestoneDesc, "Descrição do marco (opcional)...", "")

	case modeMilestoneDesc:
		v.draft.AddMilestone(v.pendingMilestoneTitle, value)
		v.pendingMilestoneTitle = ""
		v.mode = modeBrowse
		v.input.Blur()

	case modeTechName:
		v.draft.AddTechnology(v.pendingCategory, value)
		v.mode = modeBrowse
		v.input.Blur()

	case modeInput:
		return v.commitScalar(trimmed)
	}

	return v, nil
}

// commitScalar writes a scalar field back into the draft, parsing dates
// as needed
func (v FormView) commitScalar(value string) (tea.Model, tea.Cmd) {
	switch v.cursor {
	case fieldName:
		v.draft.Name = value
	case fieldSector:
		v.draft.Sector = value
	case fieldManager:
		v.draft.Manager = value
	case fieldRepoURL:
		v.draft.RepoURL = value
	case fieldDocsURL:
		v.draft.DocsURL = value

	case fieldStartDate, fieldEndDate:
		if value == "" {
			if v.cursor == fieldStartDate {
				v.draft.StartDate = nil
			} else {
				v.draft.EndDate = nil
			}
			break
		}
		parsed, err := parseDate(value)
		if err != nil {
			if f, ok := v.cursor.validationField(); ok {
				v.errors[f] = "data inválida (use AAAA-MM-DD)"
			}
			v.mode = modeBrowse
			v.input.Blur()
			return v, nil
		}
		if v.cursor == fieldStartDate {
			v.draft.StartDate = &parsed
		} else {
			v.draft.EndDate = &parsed
		}
	}

	v.clearFieldError(v.cursor)
	v.mode = modeBrowse
	v.input.Blur()
	return v, nil
}

func (v *FormView) clearFieldError(f formField) {
	if mf, ok := f.validationField(); ok {
		delete(v.errors, mf)
	}
}

// selectAccent applies an accent choice to draft, theme and root
func (v FormView) selectAccent(a palette.Accent) (tea.Model, tea.Cmd) {
	v.draft.Accent = a.Name
	theme.SetAccent(a)
	return v, func() tea.Msg {
		return AccentSelectedMsg{Accent: a}
	}
}

// listLen returns the item count of the focused list field
func (v FormView) listLen() int {
	switch v.cursor {
	case fieldTeam:
		return len(v.draft.Team)
	case fieldMilestones:
		return len(v.draft.Milestones)
	case fieldTechStack:
		return len(v.techEntries())
	}
	return 0
}

// techEntries flattens the tech-stack groups for sub-cursor navigation
func (v FormView) techEntries() []techEntry {
	var entries []techEntry
	for _, g := range v.draft.TechStack {
		for _, t := range g.Technologies {
			entries = append(entries, techEntry{category: g.Category, name: t})
		}
	}
	return entries
}

// removeCurrentItem removes the highlighted entry of the focused list field
func (v *FormView) removeCurrentItem() {
	switch v.cursor {
	case fieldTeam:
		if v.itemCursor < len(v.draft.Team) {
			v.draft.RemoveTeamMember(v.draft.Team[v.itemCursor])
		}
	case fieldMilestones:
		if v.itemCursor < len(v.draft.Milestones) {
			v.draft.RemoveMilestone(v.draft.Milestones[v.itemCursor].ID)
		}
	case fieldTechStack:
		entries := v.techEntries()
		if v.itemCursor < len(entries) {
			e := entries[v.itemCursor]
			v.draft.RemoveTechnology(e.category, e.name)
		}
	default:
		return
	}

	if max := v.listLen() - 1; v.itemCursor > max {
		if max < 0 {
			max = 0
		}
		v.itemCursor = max
	}
}

// submit validates the draft and, when clean, finalizes the record and
// kicks off document generation as a command
func (v FormView) submit() (tea.Model, tea.Cmd) {
	if v.rendering {
		v.statusMsg = "Geração em andamento..."
		return v, nil
	}

	v.errors = v.draft.Validate()
	if len(v.errors) > 0 {
		v.statusMsg = fmt.Sprintf("Corrija os %d campos destacados", len(v.errors))
		v.app.Logger.Debug().Int("errors", len(v.errors)).Msg("validation blocked submit")
		return v, nil
	}

	rec := v.draft.Finalize()
	v.rendering = true
	v.statusMsg = "Gerando documento..."

	accent := v.Accent()
	outPath := filepath.Join(v.app.OutDir, docgen.Filename(rec))
	previewPath := filepath.Join(v.app.PreviewDir,
		fmt.Sprintf("preview-%s.pdf", uuid.New().String()))

	return v, func() tea.Msg {
		start := time.Now()
		result, err := docgen.Render(rec, docgen.Options{
			Accent: accent,
			Mode:   docgen.ModeFile,
			Path:   outPath,
		})
		if err != nil {
			return documentRenderedMsg{err: err}
		}
		if err := os.WriteFile(previewPath, result.Bytes, 0644); err != nil {
			return documentRenderedMsg{err: err}
		}
		return documentRenderedMsg{
			result:      result,
			previewPath: previewPath,
			elapsed:     time.Since(start),
		}
	}
}

func prevStatus(s model.Status) model.Status {
	all := model.AllStatuses
	for i, st := range all {
		if st == s {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return all[0]
}

func prevAccent(name string) palette.Accent {
	accents := palette.Available()
	for i, a := range accents {
		if a.Name == name {
			return accents[(i+len(accents)-1)%len(accents)]
		}
	}
	return accents[0]
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// parseDate accepts ISO and Brazilian date formats
func parseDate(s string) (time.Time, error) {
	formats := []string{"2006-01-02", "02/01/2006"}
	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// View renders the form column and the live preview card side by side
func (v FormView) View() string {
	if v.width == 0 {
		return "Carregando..."
	}

	form := v.renderForm()
	preview := v.renderPreview()

	return lipgloss.JoinHorizontal(lipgloss.Top, form, " ", preview)
}

// renderForm renders the field list, any active input and the status line
func (v FormView) renderForm() string {
	styles := theme.Current.Styles
	width := v.formWidth()

	var b strings.Builder

	for f := formField(0); f < fieldCount; f++ {
		focused := v.cursor == f

		label := styles.FieldLabel.Render(f.label())
		marker := "  "
		if focused {
			label = styles.FieldLabelFocused.Render(f.label())
			marker = styles.FieldLabelFocused.Render("▸ ")
		}

		b.WriteString(marker)
		b.WriteString(label)
		b.WriteString(v.renderFieldValue(f))
		b.WriteString("\n")

		if f.isList() {
			b.WriteString(v.renderListItems(f, focused))
		}

		if mf, ok := f.validationField(); ok {
			if msg, bad := v.errors[mf]; bad {
				b.WriteString(styles.FieldError.Render("    ⚠ " + msg))
				b.WriteString("\n")
			}
		}

		if focused {
			b.WriteString(v.renderActiveInput())
		}
	}

	if v.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.FieldEmpty.Render(v.statusMsg))
		b.WriteString("\n")
	}

	return styles.Panel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// renderFieldValue renders the inline value shown next to a field label
func (v FormView) renderFieldValue(f formField) string {
	styles := theme.Current.Styles
	empty := styles.FieldEmpty.Render("—")

	switch f {
	case fieldName, fieldSector, fieldManager, fieldRepoURL, fieldDocsURL:
		value := v.fieldValue(f)
		if value == "" {
			return empty
		}
		return styles.FieldValue.Render(clip(value, 40))

	case fieldStartDate:
		if v.draft.StartDate == nil {
			return empty
		}
		return styles.FieldValue.Render(v.draft.StartDate.Format("02/01/2006"))

	case fieldEndDate:
		if v.draft.EndDate == nil {
			return empty
		}
		return styles.FieldValue.Render(v.draft.EndDate.Format("02/01/2006"))

	case fieldDescription:
		return summarizeText(v.draft.Description, empty)

	case fieldNotes:
		return summarizeText(v.draft.Notes, empty)

	case fieldStatus:
		return styles.CardBadge.Render(v.draft.Status.DisplayName()) +
			styles.FieldEmpty.Render("  ←/→ alterna")

	case fieldAccent:
		accent := v.Accent()
		dot := lipgloss.NewStyle().Foreground(accent.Color()).Render("●")
		return dot + " " + styles.FieldValue.Render(accent.Name) +
			styles.FieldEmpty.Render("  ←/→ alterna")

	case fieldTeam:
		if len(v.draft.Team) == 0 {
			return styles.FieldEmpty.Render("vazio · a adiciona")
		}
		return styles.FieldEmpty.Render(fmt.Sprintf("%d integrante(s)", len(v.draft.Team)))

	case fieldMilestones:
		if len(v.draft.Milestones) == 0 {
			return styles.FieldEmpty.Render("vazio · a adiciona")
		}
		done := 0
		for _, m := range v.draft.Milestones {
			if m.Completed {
				done++
			}
		}
		return styles.FieldEmpty.Render(fmt.Sprintf("%d/%d concluídos", done, len(v.draft.Milestones)))

	case fieldTechStack:
		entries := v.techEntries()
		if len(entries) == 0 {
			return styles.FieldEmpty.Render("vazio · a adiciona")
		}
		return styles.FieldEmpty.Render(fmt.Sprintf("%d tecnologia(s)", len(entries)))
	}

	return ""
}

func summarizeText(text string, empty string) string {
	styles := theme.Current.Styles
	if strings.TrimSpace(text) == "" {
		return empty
	}
	first := strings.SplitN(strings.TrimSpace(text), "\n", 2)[0]
	return styles.FieldValue.Render(clip(first, 40))
}

// renderListItems renders the entries beneath a list field
func (v FormView) renderListItems(f formField, focused bool) string {
	styles := theme.Current.Styles
	var b strings.Builder

	render := func(i int, line string) {
		style := styles.ListItem
		if focused && i == v.itemCursor {
			style = styles.ListItemFocused
		}
		b.WriteString("    ")
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	switch f {
	case fieldTeam:
		for i, member := range v.draft.Team {
			render(i, member)
		}

	case fieldMilestones:
		for i, m := range v.draft.Milestones {
			check := "○"
			if m.Completed {
				check = styles.CardCheckDone.Render("✓")
			}
			line := fmt.Sprintf("%s %d. %s", check, i+1, clip(m.Title, 34))
			if m.Description != "" {
				line += styles.FieldEmpty.Render(" · " + clip(m.Description, 20))
			}
			render(i, line)
		}

	case fieldTechStack:
		for i, e := range v.techEntries() {
			render(i, fmt.Sprintf("%s: %s", e.category, clip(e.name, 26)))
		}
	}

	return b.String()
}

// renderActiveInput renders the input, textarea or category selector
// attached to the focused field
func (v FormView) renderActiveInput() string {
	styles := theme.Current.Styles

	switch v.mode {
	case modeInput, modeTeamName, modeMilestoneTitle, modeMilestoneDesc, modeTechName:
		return "    " + styles.InputFocused.Render(v.input.View()) + "\n"

	case modeArea:
		hint := styles.FieldEmpty.Render("    ctrl+d confirma · esc cancela")
		return "    " + v.area.View() + "\n" + hint + "\n"

	case modeSelectCategory:
		var b strings.Builder
		b.WriteString(styles.FieldEmpty.Render("    Categoria:"))
		b.WriteString("\n")
		for i, cat := range model.AllTechCategories {
			style := styles.ListItem
			if i == v.categoryCursor {
				style = styles.ListItemFocused
			}
			b.WriteString("    ")
			b.WriteString(style.Render(string(cat)))
			b.WriteString("\n")
		}
		return b.String()
	}

	return ""
}

// renderPreview renders the live preview card. It mirrors the document:
// same truncation/wrapping for the name, same status label, same accent.
func (v FormView) renderPreview() string {
	styles := theme.Current.Styles
	accent := v.Accent()

	cardW := v.width - v.formWidth() - 6
	if cardW < 32 {
		cardW = 32
	}
	innerW := cardW - 4

	var b strings.Builder

	// Accent header: wrapped name, sector, unique code
	var header strings.Builder
	name := v.draft.Name
	if strings.TrimSpace(name) == "" {
		name = "Novo Projeto"
	}
	for _, line := range docgen.HeaderNameLines(name) {
		header.WriteString(line)
		header.WriteString("\n")
	}
	if strings.TrimSpace(v.draft.Sector) != "" {
		header.WriteString("Setor: " + clip(v.draft.Sector, 28))
		header.WriteString("\n")
	}
	header.WriteString(v.draft.Code)
	b.WriteString(styles.CardHeader.Width(innerW).Render(strings.TrimRight(header.String(), "\n")))
	b.WriteString("\n\n")

	// Status badge
	b.WriteString(styles.CardBadge.Render("● " + v.draft.Status.DisplayName()))
	b.WriteString("\n\n")

	// Core info
	if v.draft.StartDate != nil {
		b.WriteString(previewRow("Início", v.draft.StartDate.Format("02/01/2006")))
	}
	if v.draft.EndDate != nil {
		b.WriteString(previewRow("Término", v.draft.EndDate.Format("02/01/2006")))
	}
	if strings.TrimSpace(v.draft.Manager) != "" {
		b.WriteString(previewRow("Gerente", clip(v.draft.Manager, 24)))
	}
	if len(v.draft.Team) > 0 {
		shown := v.draft.Team
		suffix := ""
		if len(shown) > 4 {
			suffix = fmt.Sprintf(" +%d", len(shown)-4)
			shown = shown[:4]
		}
		b.WriteString(previewRow("Equipe", clip(strings.Join(shown, ", "), 26)+suffix))
	}

	// Tech stack
	if len(v.draft.TechStack) > 0 {
		b.WriteString("\n")
		for _, g := range v.draft.TechStack {
			b.WriteString(previewRow(string(g.Category), clip(strings.Join(g.Technologies, ", "), 24)))
		}
	}

	// Milestones (capped; the document shows them all)
	if len(v.draft.Milestones) > 0 {
		b.WriteString("\n")
		shown := v.draft.Milestones
		more := 0
		if len(shown) > 6 {
			more = len(shown) - 6
			shown = shown[:6]
		}
		for i, m := range shown {
			check := "○"
			if m.Completed {
				check = styles.CardCheckDone.Render("✓")
			}
			b.WriteString(fmt.Sprintf("%s %d. %s\n", check, i+1, clip(m.Title, innerW-8)))
		}
		if more > 0 {
			b.WriteString(styles.CardLabel.Render(fmt.Sprintf("  +%d marcos", more)))
			b.WriteString("\n")
		}
	}

	// Links
	if strings.TrimSpace(v.draft.RepoURL) != "" || strings.TrimSpace(v.draft.DocsURL) != "" {
		b.WriteString("\n")
		if strings.TrimSpace(v.draft.RepoURL) != "" {
			b.WriteString(previewRow("Repo", clip(v.draft.RepoURL, innerW-10)))
		}
		if strings.TrimSpace(v.draft.DocsURL) != "" {
			b.WriteString(previewRow("Docs", clip(v.draft.DocsURL, innerW-10)))
		}
	}

	// Scannable code
	if v.qrPreview != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(innerW).Align(lipgloss.Center).Render(v.qrPreview))
		b.WriteString("\n")
	}

	// Last generated document
	b.WriteString("\n")
	switch {
	case v.rendering:
		b.WriteString(styles.FieldEmpty.Render("Gerando documento..."))
	case v.lastResult != nil:
		pages := "páginas"
		if v.lastResult.Pages == 1 {
			pages = "página"
		}
		b.WriteString(styles.CardLabel.Render(fmt.Sprintf("Documento: %d %s, %d KB",
			v.lastResult.Pages, pages, len(v.lastResult.Bytes)/1024)))
		b.WriteString("\n")
		b.WriteString(styles.CardLabel.Render(clip(v.lastResult.Path, innerW)))
	default:
		b.WriteString(styles.FieldEmpty.Render("ctrl+e gera o documento"))
	}

	title := styles.PanelTitle.Render("Pré-visualização")
	card := styles.CardBorder.Width(cardW).BorderForeground(accent.Color()).
		Render(strings.TrimRight(b.String(), "\n"))

	return title + "\n" + card
}

func previewRow(label, value string) string {
	styles := theme.Current.Styles
	return styles.CardLabel.Render(label+": ") + styles.CardValue.Render(value) + "\n"
}

// clip shortens a string for single-line display
func clip(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
