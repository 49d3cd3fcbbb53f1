// Package prompt asks the user for the fields of an entry on a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/mindmap/pkg/entry"
)

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Prompter reads answers from Stdin and echoes to Stdout. Nil streams mean
// the process terminal.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p Prompter) run(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		Templates: templates,
		Validate:  validate,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	return prompt.Run()
}

// Text asks for free text. Empty answers are allowed.
func (p Prompter) Text(label string) (string, error) {
	v, err := p.run(label, "", nil)
	return strings.TrimSpace(v), err
}

// Intensity asks for a whole number in the entry intensity range, offering
// def.
func (p Prompter) Intensity(def int) (int, error) {
	label := fmt.Sprintf("Intensity (%d-%d)", entry.MinIntensity, entry.MaxIntensity)
	v, err := p.run(label, strconv.Itoa(def), ValidateIntensity)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

// Confirm asks a yes/no question. Anything ParseBool rejects counts as no.
func (p Prompter) Confirm(label string) (bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}
	v, err := p.run(label+" [y/N]", "", validate)
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	yes, _ := ParseBool(strings.TrimSpace(v))
	return yes, nil
}

// ValidateIntensity accepts whole numbers in the entry intensity range.
func ValidateIntensity(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return errors.New("not a whole number")
	}
	if n < entry.MinIntensity || n > entry.MaxIntensity {
		return fmt.Errorf("must be %d-%d", entry.MinIntensity, entry.MaxIntensity)
	}
	return nil
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
