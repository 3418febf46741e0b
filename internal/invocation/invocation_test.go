package invocation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Invocation
		wantErr error
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantErr: ErrNoPrompt,
		},
		{
			name: "single word",
			args: []string{"hello"},
			want: Invocation{Prompt: "hello"},
		},
		{
			name: "words joined with single spaces",
			args: []string{"hello", "world"},
			want: Invocation{Prompt: "hello world"},
		},
		{
			name: "quoted argument kept intact",
			args: []string{"explain  this", "now"},
			want: Invocation{Prompt: "explain  this now"},
		},
		{
			name: "api key at the end",
			args: []string{"explain", "foo", "--api-key", "XYZ"},
			want: Invocation{Prompt: "explain foo", APIKey: "XYZ", HasAPIKey: true},
		},
		{
			name: "api key at the start",
			args: []string{"--api-key", "XYZ", "explain", "foo"},
			want: Invocation{Prompt: "explain foo", APIKey: "XYZ", HasAPIKey: true},
		},
		{
			name: "api key in the middle",
			args: []string{"explain", "--api-key", "XYZ", "foo"},
			want: Invocation{Prompt: "explain foo", APIKey: "XYZ", HasAPIKey: true},
		},
		{
			name:    "flag without value",
			args:    []string{"--api-key"},
			wantErr: ErrMissingAPIKeyValue,
		},
		{
			name:    "flag without value after prompt",
			args:    []string{"hello", "--api-key"},
			wantErr: ErrMissingAPIKeyValue,
		},
		{
			name:    "flag with value but no prompt",
			args:    []string{"--api-key", "XYZ"},
			wantErr: ErrNoPrompt,
		},
		{
			name: "only first flag is consumed",
			args: []string{"a", "--api-key", "one", "--api-key", "two"},
			want: Invocation{Prompt: "a --api-key two", APIKey: "one", HasAPIKey: true},
		},
		{
			name: "equals form is prompt text",
			args: []string{"hi", "--api-key=XYZ"},
			want: Invocation{Prompt: "hi --api-key=XYZ"},
		},
		{
			name: "other dashes are prompt text",
			args: []string{"-v", "--help"},
			want: Invocation{Prompt: "-v --help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDoesNotModifyArgs(t *testing.T) {
	args := []string{"a", "--api-key", "k", "b"}
	orig := append([]string(nil), args...)

	if _, err := Parse(args); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(orig, args); diff != "" {
		t.Errorf("args were modified (-want +got):\n%s", diff)
	}
}

func TestErrMissingAPIKeyValueMessage(t *testing.T) {
	if got, want := ErrMissingAPIKeyValue.Error(), "--api-key requires a value"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
