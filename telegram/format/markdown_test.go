package format

import "testing"

func TestEscapeMarkdownV1(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"under_score", `under\_score`},
		{"st*ar", `st\*ar`},
		{"back`tick", "back\\`tick"},
		{"bra[cket", `bra\[cket`},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := EscapeMarkdown(tc.in, MarkdownV1)
		if err != nil {
			t.Fatalf("EscapeMarkdown(%q, v1): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("EscapeMarkdown(%q, v1) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got, err := EscapeMarkdown("a.b-c!d(e)", MarkdownV2)
	if err != nil {
		t.Fatalf("EscapeMarkdown v2: %v", err)
	}
	want := `a\.b\-c\!d\(e\)`
	if got != want {
		t.Fatalf("EscapeMarkdown v2 = %q, want %q", got, want)
	}
}

func TestEscapeMarkdownUnsupportedVersion(t *testing.T) {
	if _, err := EscapeMarkdown("x", 3); err == nil {
		t.Fatal("expected error for unsupported version, got nil")
	}
}
