package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/gemini-cli/internal/config"
	"github.com/mark3labs/gemini-cli/internal/invocation"
)

// usageLines is printed when no prompt was supplied.
var usageLines = []string{
	"Usage: python gemini-cli.py 'your prompt here'",
	"Or set " + config.APIKeyEnv + " environment variable and use:",
	"export " + config.APIKeyEnv + "='your-api-key-here'",
}

// RenderError writes the user-facing diagnostic for err. It is the single
// place where failures from any layer become output.
func RenderError(w io.Writer, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, invocation.ErrNoPrompt):
		for _, line := range usageLines {
			fmt.Fprintln(w, line)
		}
	case errors.Is(err, config.ErrNoAPIKey):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintf(w, "Get your API key from: %s\n", config.APIKeyURL)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
