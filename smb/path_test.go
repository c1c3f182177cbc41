package smb

import (
	"errors"
	"strings"
	"testing"

	"github.com/opd-ai/smbshare/limits"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "plain_name", input: "report.pdf", wantErr: nil},
		{name: "empty", input: "", wantErr: limits.ErrNameEmpty},
		{name: "too_long", input: strings.Repeat("x", 300), wantErr: limits.ErrNameTooLong},
		{name: "forward_slash", input: "a/b", wantErr: ErrDirectoryTraversal},
		{name: "back_slash", input: `a\b`, wantErr: ErrDirectoryTraversal},
		{name: "dot", input: ".", wantErr: ErrDirectoryTraversal},
		{name: "dot_dot", input: "..", wantErr: ErrDirectoryTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "relative", input: "reports/2026", want: "reports/2026"},
		{name: "empty", input: "", want: ""},
		{name: "current_dir", input: ".", want: ""},
		{name: "backslashes_normalized", input: `reports\2026`, want: "reports/2026"},
		{name: "leading_slash_stripped", input: "/reports", want: "reports"},
		{name: "traversal_rejected", input: "reports/../../etc", wantErr: true},
		{name: "bare_traversal_rejected", input: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePath(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrDirectoryTraversal) {
					t.Fatalf("ValidatePath(%q) = %v, want ErrDirectoryTraversal", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidatePath(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidatePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPathJoin(t *testing.T) {
	p := Path{Share: "public", Dir: "reports"}
	if got := p.Join("q3.pdf"); got != "reports/q3.pdf" {
		t.Errorf("Join = %q, want reports/q3.pdf", got)
	}

	root := Path{Share: "public"}
	if got := root.Join("q3.pdf"); got != "q3.pdf" {
		t.Errorf("Join at root = %q, want q3.pdf", got)
	}
}

func TestRefPath(t *testing.T) {
	ref := Ref{Share: "public", Dir: "reports", Name: "q3.pdf"}
	if got := ref.Path(); got != "reports/q3.pdf" {
		t.Errorf("Ref.Path = %q, want reports/q3.pdf", got)
	}
	if got := ref.String(); got != "public/reports/q3.pdf" {
		t.Errorf("Ref.String = %q, want public/reports/q3.pdf", got)
	}
}
