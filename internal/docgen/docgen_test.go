package docgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tbsouza/projeta/internal/model"
	"github.com/tbsouza/projeta/internal/palette"
)

func minimalRecord() *model.Record {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return &model.Record{
		Code:      "PRJ-202608-K3TZ",
		Name:      "Portal do Cliente",
		Sector:    "TI",
		Status:    model.StatusPlanning,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func fixedOptions() Options {
	return Options{
		Accent: palette.Azul,
		Mode:   ModeBytes,
		Now:    time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderMinimalRecordSinglePage(t *testing.T) {
	// No description, no tech stack, no milestones, no links, no notes:
	// every optional section is omitted and everything fits on one page
	result, err := Render(minimalRecord(), fixedOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if result.Pages != 1 {
		t.Errorf("pages = %d, want 1", result.Pages)
	}
	if !bytes.HasPrefix(result.Bytes, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if result.Path != "" {
		t.Errorf("path = %q, want empty for ModeBytes", result.Path)
	}
}

func TestRenderFullRecordSpansPages(t *testing.T) {
	rec := minimalRecord()
	rec.Name = "Sistema de Gestão Financeira Corporativa Avançada"
	rec.Description = "Plataforma unificada para consolidar os fluxos financeiros " +
		"da companhia, incluindo contas a pagar, contas a receber, conciliação " +
		"bancária e projeções de caixa com relatórios gerenciais."
	rec.Manager = "Maria Souza"
	rec.Team = []string{"Ana", "Bruno", "Carla", "Daniel", "Edu", "Fernanda"}
	rec.TechStack = []model.TechGroup{
		{Category: model.TechBackend, Technologies: []string{"Go", "PostgreSQL"}},
		{Category: model.TechFrontend, Technologies: []string{"React", "TypeScript"}},
	}
	rec.RepoURL = "https://github.com/empresa/gestao-financeira"
	rec.DocsURL = "https://wiki.empresa.com/projetos/gestao-financeira"
	rec.Notes = "Orçamento aprovado pela diretoria. Integração com o ERP legado " +
		"fica para a fase 2."
	for i := 1; i <= 12; i++ {
		rec.Milestones = append(rec.Milestones, model.Milestone{
			ID:    i,
			Title: fmt.Sprintf("Marco %d", i),
			Description: "Entrega incremental com homologação junto ao time de " +
				"negócio e atualização da documentação do projeto",
			Completed: i%2 == 0,
		})
	}

	result, err := Render(rec, fixedOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if result.Pages < 2 {
		t.Errorf("pages = %d, want at least 2 for 12 milestones with descriptions", result.Pages)
	}
}

func TestRenderDeterministic(t *testing.T) {
	opts := fixedOptions()

	a, err := Render(minimalRecord(), opts)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	b, err := Render(minimalRecord(), opts)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if !bytes.Equal(a.Bytes, b.Bytes) {
		t.Error("same record and options produced different documents")
	}
}

func TestRenderModeFileWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projeto.pdf")

	opts := fixedOptions()
	opts.Mode = ModeFile
	opts.Path = path

	result, err := Render(minimalRecord(), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.Path != path {
		t.Errorf("result path = %q, want %q", result.Path, path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !bytes.Equal(written, result.Bytes) {
		t.Error("file contents differ from returned bytes")
	}
}

func TestRenderModeFileRequiresPath(t *testing.T) {
	opts := fixedOptions()
	opts.Mode = ModeFile

	if _, err := Render(minimalRecord(), opts); err == nil {
		t.Error("expected error for ModeFile without a path")
	}
}

func TestRenderNilRecord(t *testing.T) {
	if _, err := Render(nil, fixedOptions()); err == nil {
		t.Error("expected error for nil record")
	}
}

func TestRenderDefaultsAccent(t *testing.T) {
	opts := fixedOptions()
	opts.Accent = palette.Accent{}

	if _, err := Render(minimalRecord(), opts); err != nil {
		t.Errorf("Render with zero accent failed: %v", err)
	}
}

func TestFilename(t *testing.T) {
	rec := minimalRecord()
	if got := Filename(rec); got != "PRJ-202608-K3TZ.pdf" {
		t.Errorf("Filename = %q", got)
	}
}
