package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	if err := Banner(&buf, "The answer is 42."); err != nil {
		t.Fatalf("Banner failed: %v", err)
	}

	sep := strings.Repeat("=", 50)
	want := "\n" + sep + "\nRESPONSE:\n" + sep + "\nThe answer is 42.\n" + sep + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected:\n%q\nGot:\n%q", want, got)
	}
}

func TestSpinnerStopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Working")
	s.fps = time.Millisecond
	s.Start()
	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Working") {
		t.Errorf("Expected spinner message in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\r\033[K") {
		t.Errorf("Expected output to end with a line clear, got %q", out)
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "idle")
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Title\n\nSome **bold** text.", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Errorf("Expected rendered content to keep the text, got %q", out)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	if got := TerminalWidth(nil); got != defaultWidth {
		t.Errorf("Expected %d, got %d", defaultWidth, got)
	}
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
