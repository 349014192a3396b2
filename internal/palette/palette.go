// Package palette defines the fixed set of accent colors selectable by the
// user. Each accent carries a hex value for terminal styling and an RGB
// triple for the document renderer, so preview and PDF always agree.
package palette

import "github.com/charmbracelet/lipgloss"

// Accent is a named accent color
type Accent struct {
	Name string
	Hex  string
	R    int
	G    int
	B    int
}

// Color returns the accent as a lipgloss color
func (a Accent) Color() lipgloss.Color {
	return lipgloss.Color(a.Hex)
}

// The eight selectable accents
var (
	Azul     = Accent{Name: "Azul", Hex: "#2563EB", R: 37, G: 99, B: 235}
	Verde    = Accent{Name: "Verde", Hex: "#16A34A", R: 22, G: 163, B: 74}
	Roxo     = Accent{Name: "Roxo", Hex: "#7C3AED", R: 124, G: 58, B: 237}
	Vermelho = Accent{Name: "Vermelho", Hex: "#DC2626", R: 220, G: 38, B: 38}
	Laranja  = Accent{Name: "Laranja", Hex: "#EA580C", R: 234, G: 88, B: 12}
	Rosa     = Accent{Name: "Rosa", Hex: "#DB2777", R: 219, G: 39, B: 119}
	Ciano    = Accent{Name: "Ciano", Hex: "#0891B2", R: 8, G: 145, B: 178}
	Grafite  = Accent{Name: "Grafite", Hex: "#475569", R: 71, G: 85, B: 105}
)

// Default is the accent used when none was chosen
var Default = Azul

// Available returns all accents in display order
func Available() []Accent {
	return []Accent{Azul, Verde, Roxo, Vermelho, Laranja, Rosa, Ciano, Grafite}
}

// ByName returns an accent by its name
func ByName(name string) (Accent, bool) {
	for _, a := range Available() {
		if a.Name == name {
			return a, true
		}
	}
	return Accent{}, false
}

// Next returns the accent following the named one, wrapping around.
// Unknown names start the cycle from the beginning.
func Next(name string) Accent {
	accents := Available()
	for i, a := range accents {
		if a.Name == name {
			return accents[(i+1)%len(accents)]
		}
	}
	return accents[0]
}
