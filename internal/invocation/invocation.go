// Package invocation turns raw process arguments into a prompt and an
// optional API key override.
package invocation

import (
	"errors"
	"strings"
)

// APIKeyFlag is the literal token that introduces an API key override. It may
// appear anywhere among the prompt words.
const APIKeyFlag = "--api-key"

var (
	// ErrNoPrompt is returned when no prompt words were supplied.
	ErrNoPrompt = errors.New("no prompt provided")
	// ErrMissingAPIKeyValue is returned when APIKeyFlag is the last argument.
	ErrMissingAPIKeyValue = errors.New(APIKeyFlag + " requires a value")
)

// Invocation is a parsed command line.
type Invocation struct {
	// Prompt is the remaining words joined with single spaces.
	Prompt string
	// APIKey is the override value. Only meaningful when HasAPIKey is true.
	APIKey    string
	HasAPIKey bool
}

// Parse extracts the prompt and API key override from args, which must not
// include the program name. Only the first APIKeyFlag is consumed; any later
// occurrence is treated as a prompt word.
func Parse(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, ErrNoPrompt
	}

	var inv Invocation
	words := args
	for i, arg := range args {
		if arg != APIKeyFlag {
			continue
		}
		if i+1 >= len(args) {
			return Invocation{}, ErrMissingAPIKeyValue
		}
		inv.APIKey = args[i+1]
		inv.HasAPIKey = true
		words = make([]string, 0, len(args)-2)
		words = append(words, args[:i]...)
		words = append(words, args[i+2:]...)
		break
	}

	// An override with nothing else would send an empty prompt.
	inv.Prompt = strings.Join(words, " ")
	if inv.Prompt == "" {
		return Invocation{}, ErrNoPrompt
	}
	return inv, nil
}
