// Package wheel holds the emotion wheel: six core emotions, each with a
// colour and three finer-grained feelings.
package wheel

import (
	"strings"

	"golang.org/x/text/cases"
)

// Sector is one core emotion of the wheel.
type Sector struct {
	Name  string   `json:"name" yaml:"name"`
	Color string   `json:"color" yaml:"color"`
	Subs  []string `json:"subEmotions" yaml:"subEmotions"`
}

// Sectors are listed clockwise from the top of the wheel.
var Sectors = []Sector{
	{Name: "Anger", Color: "#f94144", Subs: []string{"Mad", "Frustrated", "Aggressive"}},
	{Name: "Fear", Color: "#43aa8b", Subs: []string{"Anxious", "Insecure", "Scared"}},
	{Name: "Sad", Color: "#577590", Subs: []string{"Lonely", "Depressed", "Guilty"}},
	{Name: "Happy", Color: "#f9c74f", Subs: []string{"Joyful", "Proud", "Playful"}},
	{Name: "Surprise", Color: "#90be6d", Subs: []string{"Startled", "Confused", "Amazed"}},
	{Name: "Disgust", Color: "#4d908e", Subs: []string{"Disapproval", "Awful", "Embarrassed"}},
}

// Labels returns every selectable label, each sector followed by its
// sub-emotions.
func Labels() []string {
	out := make([]string, 0, len(Sectors)*4)
	for _, s := range Sectors {
		out = append(out, s.Name)
		out = append(out, s.Subs...)
	}
	return out
}

// Lookup finds the sector a label belongs to, ignoring case. Both sector
// names and sub-emotions match.
func Lookup(label string) (Sector, bool) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(label))
	if want == "" {
		return Sector{}, false
	}
	for _, s := range Sectors {
		if fold.String(s.Name) == want {
			return s, true
		}
		for _, sub := range s.Subs {
			if fold.String(sub) == want {
				return s, true
			}
		}
	}
	return Sector{}, false
}

// Canonical returns the wheel's spelling of label, or label trimmed when it
// is not on the wheel.
func Canonical(label string) string {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(label))
	for _, l := range Labels() {
		if fold.String(l) == want {
			return l
		}
	}
	return strings.TrimSpace(label)
}
