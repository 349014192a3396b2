// Package docgen renders a finalized project record into a paginated PDF.
// Layout is deterministic: the same record and accent always produce the
// same pages. Pagination is manual (auto page break disabled) so each
// block type can use its own near-bottom threshold.
package docgen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/tbsouza/projeta/internal/model"
	"github.com/tbsouza/projeta/internal/palette"
	"github.com/tbsouza/projeta/internal/scancode"
)

// Mode selects what happens with the rendered document. The layout is
// identical across modes.
type Mode int

const (
	// ModeBytes returns the raw document bytes only
	ModeBytes Mode = iota
	// ModeFile additionally writes the document to Options.Path
	ModeFile
	// ModeOpen writes the document and opens it in the system viewer
	ModeOpen
)

// Options configures a render call
type Options struct {
	Accent palette.Accent
	Mode   Mode
	// Path is the output file for ModeFile and ModeOpen
	Path string
	// Now is the generation timestamp shown in the footer.
	// Zero means time.Now().
	Now time.Time
}

// Result is the outcome of a render call
type Result struct {
	Bytes []byte
	Pages int
	Path  string
}

// Page geometry in millimeters (A4 portrait)
const (
	pageW    = 210.0
	marginL  = 15.0
	contentW = pageW - 2*marginL

	headerH     = 42.0
	breakAt     = 272.0 // content below this line moves to the next page
	topOnBreak  = 18.0  // cursor position after a page break
	footerY     = 282.0
	qrBoxSize   = 28.0
	qrImageSize = 25.0
)

// Filename returns the default output file name for a record
func Filename(rec *model.Record) string {
	return fmt.Sprintf("%s.pdf", rec.Code)
}

// Render lays out rec and emits the document according to opts.
// The scannable code is generated first; its failure aborts the render.
func Render(rec *model.Record, opts Options) (*Result, error) {
	if rec == nil {
		return nil, errors.New("nil record")
	}

	accent := opts.Accent
	if accent.Name == "" {
		accent = palette.Default
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	qrPNG, err := scancode.PNG(rec.Code, scancode.Options{Size: 256})
	if err != nil {
		return nil, errors.Wrap(err, "generating scannable code")
	}

	r := newRenderer(accent, now)
	r.build(rec, qrPNG)

	if err := r.pdf.Error(); err != nil {
		return nil, errors.Wrap(err, "laying out document")
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "writing document")
	}

	result := &Result{
		Bytes: buf.Bytes(),
		Pages: r.pdf.PageCount(),
	}

	if opts.Mode == ModeFile || opts.Mode == ModeOpen {
		if opts.Path == "" {
			return nil, errors.New("output path required")
		}
		if err := os.WriteFile(opts.Path, result.Bytes, 0644); err != nil {
			return nil, errors.Wrap(err, "saving document")
		}
		result.Path = opts.Path
	}

	if opts.Mode == ModeOpen {
		if err := OpenViewer(opts.Path); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// renderer carries the document state while blocks are laid out
type renderer struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	accent palette.Accent
	y      float64
}

func newRenderer(accent palette.Accent, now time.Time) *renderer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetAutoPageBreak(false, 0)

	r := &renderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		accent: accent,
	}

	// Footers carry the generation timestamp and "page X of Y". The total
	// is an alias resolved by fpdf once the page count is known.
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.SetXY(marginL, footerY)
		pdf.CellFormat(contentW/2, 5,
			r.tr(fmt.Sprintf("Gerado em %s", now.Format("02/01/2006 15:04"))),
			"", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5,
			r.tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())),
			"", 0, "R", false, 0, "")
	})

	return r
}

// build renders every block of the record in order
func (r *renderer) build(rec *model.Record, qrPNG []byte) {
	r.pdf.SetTitle(rec.Name, true)
	r.pdf.SetAuthor("projeta", false)

	r.pdf.AddPage()
	r.renderHeader(rec, qrPNG)
	r.renderStatusBadge(rec.Status)
	r.renderCoreInfo(rec)

	if rec.Description != "" {
		r.renderTextSection("Descrição", rec.Description, 0)
	}
	if len(rec.TechStack) > 0 {
		r.renderTechStack(rec.TechStack)
	}
	if len(rec.Milestones) > 0 {
		r.renderMilestones(rec.Milestones)
	}
	if rec.HasLinks() {
		r.renderLinks(rec)
	}
	if rec.Notes != "" {
		r.renderTextSection("Observações", rec.Notes, 4)
	}
}

// ensureSpace starts a new page when h would not fit above the break
// line. Continuation pages get a thin accent rule instead of the full
// header band.
func (r *renderer) ensureSpace(h float64) {
	if r.y+h <= breakAt {
		return
	}
	r.pdf.AddPage()
	r.pdf.SetFillColor(r.accent.R, r.accent.G, r.accent.B)
	r.pdf.Rect(0, 0, pageW, 4, "F")
	r.y = topOnBreak
}

// renderHeader draws the accent band with the project name, sector,
// unique code and the scannable code image
func (r *renderer) renderHeader(rec *model.Record, qrPNG []byte) {
	pdf := r.pdf

	pdf.SetFillColor(r.accent.R, r.accent.G, r.accent.B)
	pdf.Rect(0, 0, pageW, headerH, "F")

	// Scannable code on a white box (the box doubles as the quiet zone)
	qrX := pageW - marginL - qrBoxSize
	pdf.SetFillColor(255, 255, 255)
	pdf.RoundedRect(qrX, 7, qrBoxSize, qrBoxSize, 1.5, "1234", "F")

	imgName := "qr-" + rec.Code
	pdf.RegisterImageOptionsReader(imgName,
		fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	inset := (qrBoxSize - qrImageSize) / 2
	pdf.ImageOptions(imgName, qrX+inset, 7+inset, qrImageSize, qrImageSize,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Project name, truncated then wrapped
	lines := HeaderNameLines(rec.Name)
	pdf.SetTextColor(255, 255, 255)
	nameSize := 18.0
	lineH := 9.0
	if len(lines) > 1 {
		nameSize = 15.0
		lineH = 7.5
	}
	pdf.SetFont("Helvetica", "B", nameSize)

	y := 16.0
	for _, line := range lines {
		pdf.Text(marginL, y, r.tr(line))
		y += lineH
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginL, y+3, r.tr(fmt.Sprintf("Setor: %s", rec.Sector)))

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(marginL, y+9, r.tr(rec.Code))

	r.y = headerH + 8
}

// renderStatusBadge draws the status pill under the header band
func (r *renderer) renderStatusBadge(status model.Status) {
	pdf := r.pdf
	label := status.DisplayName()

	pdf.SetFont("Helvetica", "B", 10)
	w := pdf.GetStringWidth(r.tr(label)) + 10

	pdf.SetDrawColor(r.accent.R, r.accent.G, r.accent.B)
	pdf.SetLineWidth(0.4)
	pdf.RoundedRect(marginL, r.y, w, 8.5, 2, "1234", "D")

	pdf.SetTextColor(r.accent.R, r.accent.G, r.accent.B)
	pdf.SetXY(marginL, r.y)
	pdf.CellFormat(w, 8.5, r.tr(label), "", 0, "C", false, 0, "")

	r.y += 8.5 + 7
}

// sectionTitle renders a section heading with its underline. The guard
// reserves room for the title plus at least one content row so a heading
// is never orphaned at the bottom of a page.
func (r *renderer) sectionTitle(title string) {
	r.ensureSpace(9 + 10)

	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(r.accent.R, r.accent.G, r.accent.B)
	pdf.Text(marginL, r.y+4.5, r.tr(title))

	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginL, r.y+7, marginL+contentW, r.y+7)

	r.y += 11
}

// infoRow renders one label/value row of the core info block
func (r *renderer) infoRow(label, value string) {
	r.ensureSpace(6.5)

	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(marginL, r.y+4, r.tr(label))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(31, 41, 55)
	pdf.Text(marginL+42, r.y+4, r.tr(value))

	r.y += 6.5
}

// maxTeamInCoreInfo is how many team members the core info block lists
// before collapsing the rest into a "+N" suffix
const maxTeamInCoreInfo = 4

func (r *renderer) renderCoreInfo(rec *model.Record) {
	r.sectionTitle("Informações Gerais")

	r.infoRow("Início", rec.StartDate.Format("02/01/2006"))
	if rec.EndDate != nil {
		r.infoRow("Término", rec.EndDate.Format("02/01/2006"))
	}
	if rec.Manager != "" {
		r.infoRow("Gerente", rec.Manager)
	}
	if len(rec.Team) > 0 {
		shown := rec.Team
		suffix := ""
		if len(shown) > maxTeamInCoreInfo {
			suffix = fmt.Sprintf(" +%d", len(shown)-maxTeamInCoreInfo)
			shown = shown[:maxTeamInCoreInfo]
		}
		value := ""
		for i, member := range shown {
			if i > 0 {
				value += ", "
			}
			value += member
		}
		r.infoRow("Equipe", value+suffix)
	}

	r.y += 4
}

// renderTextSection renders a titled free-text block. maxLines of zero
// means unlimited.
func (r *renderer) renderTextSection(title, text string, maxLines int) {
	r.sectionTitle(title)

	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(31, 41, 55)

	lines := pdf.SplitText(r.tr(text), contentW)
	if maxLines > 0 {
		lines = capLines(lines, maxLines)
	}
	for _, line := range lines {
		r.ensureSpace(5.5)
		pdf.Text(marginL, r.y+4, line)
		r.y += 5.5
	}

	r.y += 4
}

func (r *renderer) renderTechStack(groups []model.TechGroup) {
	r.sectionTitle("Stack Tecnológica")

	pdf := r.pdf
	for _, group := range groups {
		// Category plus its first line stay together
		r.ensureSpace(6 + 5.5)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(31, 41, 55)
		pdf.Text(marginL, r.y+4, r.tr(string(group.Category)))
		r.y += 6

		joined := ""
		for i, tech := range group.Technologies {
			if i > 0 {
				joined += ", "
			}
			joined += tech
		}

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(107, 114, 128)
		for _, line := range pdf.SplitText(r.tr(joined), contentW-6) {
			r.ensureSpace(5.5)
			pdf.Text(marginL+6, r.y+4, line)
			r.y += 5.5
		}
		r.y += 2
	}

	r.y += 2
}

// milestoneDescLines caps each milestone description
const milestoneDescLines = 2

func (r *renderer) renderMilestones(milestones []model.Milestone) {
	r.sectionTitle("Marcos")

	pdf := r.pdf
	for i, m := range milestones {
		pdf.SetFont("Helvetica", "", 9)
		var descLines []string
		if m.Description != "" {
			descLines = capLines(pdf.SplitText(r.tr(m.Description), contentW-12), milestoneDescLines)
		}

		// A milestone is atomic: title and description never split
		// across pages
		blockH := 7.0 + float64(len(descLines))*4.8
		r.ensureSpace(blockH)

		// Completion checkbox
		boxY := r.y + 0.8
		pdf.SetDrawColor(r.accent.R, r.accent.G, r.accent.B)
		pdf.SetLineWidth(0.35)
		if m.Completed {
			pdf.SetFillColor(r.accent.R, r.accent.G, r.accent.B)
			pdf.Rect(marginL, boxY, 3.8, 3.8, "FD")
			pdf.SetDrawColor(255, 255, 255)
			pdf.SetLineWidth(0.5)
			pdf.Line(marginL+0.8, boxY+2, marginL+1.6, boxY+2.9)
			pdf.Line(marginL+1.6, boxY+2.9, marginL+3.1, boxY+1)
		} else {
			pdf.Rect(marginL, boxY, 3.8, 3.8, "D")
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(31, 41, 55)
		pdf.Text(marginL+6, r.y+4, r.tr(fmt.Sprintf("%d. %s", i+1, m.Title)))
		r.y += 6

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(107, 114, 128)
		for _, line := range descLines {
			pdf.Text(marginL+6, r.y+3.6, line)
			r.y += 4.8
		}
		r.y += 1.5
	}

	r.y += 2.5
}

// maxLinkRunes caps a rendered URL before it collides with the margin
const maxLinkRunes = 70

func (r *renderer) renderLinks(rec *model.Record) {
	r.sectionTitle("Links")

	if rec.RepoURL != "" {
		r.infoRow("Repositório", truncate(rec.RepoURL, maxLinkRunes))
	}
	if rec.DocsURL != "" {
		r.infoRow("Documentação", truncate(rec.DocsURL, maxLinkRunes))
	}

	r.y += 4
}

// OpenViewer hands a document to the system PDF viewer
func OpenViewer(path string) error {
	bin := "xdg-open"
	if runtime.GOOS == "darwin" {
		bin = "open"
	}
	if err := exec.Command(bin, path).Start(); err != nil {
		return errors.Wrap(err, "opening viewer")
	}
	return nil
}
