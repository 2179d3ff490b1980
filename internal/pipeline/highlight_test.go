package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestValidateHighlightStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{"empty means default", "", nil},
		{"default style", DefaultHighlightStyle, nil},
		{"another registered style", "github", nil},
		{"unknown style", "no-such-style", ErrUnknownHighlightStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateHighlightStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateHighlightStyle(%q) = %v, want %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	if len(names) == 0 {
		t.Fatal("HighlightStyles() returned no styles")
	}
	found := false
	for i, name := range names {
		if i > 0 && names[i-1] > name {
			t.Errorf("styles not sorted: %q before %q", names[i-1], name)
		}
		if name == DefaultHighlightStyle {
			found = true
		}
	}
	if !found {
		t.Errorf("HighlightStyles() should include %q", DefaultHighlightStyle)
	}
}

func TestWriteHighlightCSS(t *testing.T) {
	t.Parallel()

	t.Run("writes class based css", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := WriteHighlightCSS(&buf, ""); err != nil {
			t.Fatalf("WriteHighlightCSS() unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), ".chroma") {
			t.Errorf("CSS should target .chroma classes, got:\n%s", buf.String())
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := WriteHighlightCSS(&buf, "no-such-style")
		if !errors.Is(err, ErrUnknownHighlightStyle) {
			t.Errorf("WriteHighlightCSS() error = %v, want ErrUnknownHighlightStyle", err)
		}
		if buf.Len() != 0 {
			t.Error("nothing should be written for an unknown style")
		}
	})
}
