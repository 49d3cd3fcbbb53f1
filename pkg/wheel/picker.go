package wheel

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Picker chooses an emotion label.
type Picker interface {
	Pick(ctx context.Context) (string, error)
}

// StaticPicker always picks Label.
type StaticPicker struct {
	Label string
}

func (s StaticPicker) Pick(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(s.Label) == "" {
		return "", errors.New("wheel: no emotion picked")
	}
	return Canonical(s.Label), nil
}

type option struct {
	Label  string
	Sector string
	Color  string
}

// PromptPicker asks on a terminal, first for a sector and then for the
// sector itself or one of its sub-emotions.
type PromptPicker struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p PromptPicker) Pick(ctx context.Context) (string, error) {
	sectors := make([]option, 0, len(Sectors))
	for _, s := range Sectors {
		sectors = append(sectors, option{Label: s.Name, Sector: strings.Join(s.Subs, ", "), Color: s.Color})
	}
	i, err := p.run(ctx, "How are you feeling", sectors)
	if err != nil {
		return "", err
	}

	s := Sectors[i]
	subs := []option{{Label: s.Name, Sector: "just " + strings.ToLower(s.Name)}}
	for _, sub := range s.Subs {
		subs = append(subs, option{Label: sub, Sector: s.Name})
	}
	j, err := p.run(ctx, s.Name, subs)
	if err != nil {
		return "", err
	}
	return subs[j].Label, nil
}

func (p PromptPicker) run(ctx context.Context, label string, items []option) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }} {{ .Sector | faint }}",
		Inactive: "   {{ .Label }} {{ .Sector | faint }}",
		Selected: "{{ .Label | bold }}",
	}
	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Label)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
		Searcher:  searcher,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	i, _, err := prompt.Run()
	return i, err
}
