package ass

import (
	"errors"
	"strings"
	"testing"

	"cueburn/internal/services"
)

func TestWriteDocument(t *testing.T) {
	style := DefaultStyle()
	style.PrimaryColor = "#FFFFFF"
	events := []Event{
		{Start: 0, End: 2.5, Text: "First line" + LineBreak + "second line"},
		{Start: 2.5, End: 4, Text: "Next cue"},
	}

	doc, err := Document(style, events)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	for _, section := range []string{"[Script Info]", "[V4+ Styles]", "[Events]"} {
		if !strings.Contains(doc, section) {
			t.Errorf("document missing section %s", section)
		}
	}
	if !strings.Contains(doc, "Style: Default,Arial,48,&H00FFFFFF,") {
		t.Errorf("style line missing or color not normalized:\n%s", doc)
	}
	if !strings.Contains(doc, "Dialogue: 0,0:00:00.00,0:00:02.50,Default,,0,0,0,,First line\\Nsecond line") {
		t.Errorf("dialogue line malformed:\n%s", doc)
	}
	if !strings.Contains(doc, "WrapStyle: 2") {
		t.Errorf("expected renderer auto-wrap disabled:\n%s", doc)
	}

	// Events stay in input order.
	first := strings.Index(doc, "First line")
	second := strings.Index(doc, "Next cue")
	if first < 0 || second < 0 || second < first {
		t.Errorf("events reordered:\n%s", doc)
	}
}

func TestWriteDocumentAbortsOnBadStyle(t *testing.T) {
	style := DefaultStyle()
	style.BackColor = "red,blue"
	var b strings.Builder
	err := WriteDocument(&b, style, []Event{{Start: 0, End: 1, Text: "hi"}})
	if !errors.Is(err, services.ErrInjection) {
		t.Fatalf("expected ErrInjection, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected no partial document, got %q", b.String())
	}
}

func TestWriteDocumentRejectsFontNameInjection(t *testing.T) {
	style := DefaultStyle()
	style.FontName = "Arial,0,&H00FF0000"
	_, err := Document(style, nil)
	if !errors.Is(err, services.ErrInjection) {
		t.Fatalf("expected ErrInjection for font name, got %v", err)
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain words", "plain words"},
		{"{\\b1}bold{\\b0}", "(⧵b1)bold(⧵b0)"},
		{"line\nfeed", "line feed"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := EscapeText(tt.input); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStyleValidateAlignment(t *testing.T) {
	style := DefaultStyle()
	style.Alignment = 11
	if err := style.Validate(); err == nil {
		t.Fatal("expected error for alignment out of range")
	}
}
