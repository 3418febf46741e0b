// Package ui holds the terminal output helpers for gemini-cli.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// BannerWidth is the number of separator characters in a banner line.
const BannerWidth = 50

// ThinkingMessage is printed before the generation request is sent.
const ThinkingMessage = "🤖 Gemini is thinking..."

var separator = strings.Repeat("=", BannerWidth)

// Banner writes text framed by separator lines under a RESPONSE: label. The
// leading empty line separates it from the progress line.
func Banner(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "\n%s\nRESPONSE:\n%s\n%s\n%s\n", separator, separator, text, separator)
	return err
}
