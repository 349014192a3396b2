package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbsouza/projeta/internal/app"
	"github.com/tbsouza/projeta/internal/palette"
	"github.com/tbsouza/projeta/internal/ui"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("projeta v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	colorFlag := flag.String("color", "", "Starting accent color (Azul, Verde, Roxo, Vermelho, Laranja, Rosa, Ciano, Grafite)")
	outFlag := flag.String("out", "", "Directory for generated documents")
	flag.Parse()

	if err := runTUI(*colorFlag, *outFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `projeta - ficha de projeto em PDF, direto do terminal

Usage:
  projeta                   Start the form
  projeta version           Show version
  projeta help              Show this help

Options:
  --color <name>    Starting accent color
                    (Azul, Verde, Roxo, Vermelho, Laranja, Rosa, Ciano, Grafite)
  --out <dir>       Directory for generated documents
                    (default: ~/.local/share/projeta/documentos)

Keybindings:
  Navigation:   ↑/↓ or j/k    Move between fields
                ←/→ or h/l    Previous/next list item, cycle status/color

  Editing:      enter         Edit focused field
                a             Add item (team, milestones, stack)
                x             Remove highlighted item
                tab           Toggle milestone done
                esc           Cancel input

  Document:     ctrl+e        Validate and generate the PDF
                o             Open the last generated document

  System:       ctrl+t        Cycle accent color
                ?             Help
                q             Quit

Environment:
  PROJETA_DEBUG=1   Debug logging to ~/.local/share/projeta/projeta.log

For more info: https://github.com/tbsouza/projeta`

	fmt.Println(help)
}

func runTUI(colorName, outDir string) error {
	accent := palette.Default
	if colorName != "" {
		a, ok := palette.ByName(colorName)
		if !ok {
			return fmt.Errorf("unknown color %q", colorName)
		}
		accent = a
	}

	cfg := app.DefaultConfig()
	if outDir != "" {
		cfg.OutDir = outDir
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	application.Logger.Info().Str("version", version).Msg("starting")

	model := ui.NewRootModel(application, accent)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
