package entity

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCompleter is the completer used when activation does not name one.
const DefaultCompleter = "omni"

// ErrInvalidActivation is returned when an activation payload is rejected.
var ErrInvalidActivation = errors.New("invalid activation options")

// ActivateOptions establishes the initial controller state when the
// vomnibar is shown.
type ActivateOptions struct {
	Completer   string `json:"completer"`
	Query       string `json:"query"`
	NewTab      bool   `json:"newTab"`
	SelectFirst bool   `json:"selectFirst"`
	Keyword     string `json:"keyword"`
}

// DefaultActivateOptions returns the defaults applied to missing fields.
func DefaultActivateOptions() ActivateOptions {
	return ActivateOptions{Completer: DefaultCompleter}
}

// Validate checks the options without mutating them.
func (o ActivateOptions) Validate() error {
	var problems []string

	if o.Completer == "" {
		problems = append(problems, "completer cannot be empty")
	} else if strings.ContainsAny(o.Completer, " \t\r\n") {
		problems = append(problems, fmt.Sprintf("completer %q must not contain whitespace", o.Completer))
	}
	if strings.ContainsAny(o.Keyword, " \t\r\n") {
		problems = append(problems, fmt.Sprintf("keyword %q must not contain whitespace", o.Keyword))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidActivation, strings.Join(problems, "; "))
	}
	return nil
}

// InitialSelection returns the selection sentinel for these options.
func (o ActivateOptions) InitialSelection() int {
	if o.SelectFirst {
		return 0
	}
	return -1
}
