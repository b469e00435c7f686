// Package dialog implements interactive terminal prompts.
package dialog

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/mo"
)

// Survey asks questions on the terminal.
type Survey struct {
	// PageSize is the number of options shown at once; zero uses the survey default.
	PageSize int
}

// Select asks the user to pick one of labels. Interrupting the prompt, or
// offering nothing to pick, yields an empty option.
func (s Survey) Select(prompt string, labels []string) (mo.Option[int], error) {
	if len(labels) == 0 {
		return mo.None[int](), nil
	}

	question := &survey.Select{
		Message:  prompt,
		Options:  labels,
		PageSize: s.PageSize,
	}

	var index int
	if err := survey.AskOne(question, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return mo.None[int](), nil
		}
		return mo.None[int](), err
	}
	return mo.Some(index), nil
}

// Confirm asks a yes/no question. Interrupting counts as no.
func (s Survey) Confirm(prompt string, fallback bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: prompt, Default: fallback}, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	return answer, err
}
