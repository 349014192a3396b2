package palette

import "testing"

func TestEightAccents(t *testing.T) {
	accents := Available()
	if len(accents) != 8 {
		t.Fatalf("accents = %d, want 8", len(accents))
	}

	seen := make(map[string]bool)
	for _, a := range accents {
		if a.Name == "" || a.Hex == "" {
			t.Errorf("accent %+v missing name or hex", a)
		}
		if seen[a.Name] {
			t.Errorf("duplicate accent name %q", a.Name)
		}
		seen[a.Name] = true

		if len(a.Hex) != 7 || a.Hex[0] != '#' {
			t.Errorf("accent %s hex = %q, want #RRGGBB", a.Name, a.Hex)
		}
		for _, c := range []int{a.R, a.G, a.B} {
			if c < 0 || c > 255 {
				t.Errorf("accent %s has RGB component out of range: %d", a.Name, c)
			}
		}
	}
}

func TestByName(t *testing.T) {
	a, ok := ByName("Verde")
	if !ok || a.Name != "Verde" {
		t.Errorf("ByName(Verde) = %+v, %v", a, ok)
	}

	if _, ok := ByName("Turquesa"); ok {
		t.Error("ByName should reject unknown names")
	}
}

func TestNextWrapsAround(t *testing.T) {
	accents := Available()

	if got := Next(accents[0].Name); got.Name != accents[1].Name {
		t.Errorf("Next(%s) = %s, want %s", accents[0].Name, got.Name, accents[1].Name)
	}
	if got := Next(accents[len(accents)-1].Name); got.Name != accents[0].Name {
		t.Errorf("Next(last) = %s, want %s", got.Name, accents[0].Name)
	}
	if got := Next("desconhecida"); got.Name != accents[0].Name {
		t.Errorf("Next(unknown) = %s, want first accent", got.Name)
	}
}
