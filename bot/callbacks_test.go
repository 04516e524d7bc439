package bot

import (
	"testing"

	"github.com/m3rciful/pwgenbot/settings"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		unique  string
		payload string
		want    command
	}{
		{"preset length", "len", "8", command{kind: cmdSelectLength, length: 8}},
		{"another preset", "len", "24", command{kind: cmdSelectLength, length: 24}},
		{"in-range non-preset", "len", "33", command{kind: cmdSelectLength, length: 33}},
		{"custom entry", "len", "custom", command{kind: cmdCustomLength}},
		{"length below range", "len", "3", command{kind: cmdUnknown}},
		{"length above range", "len", "129", command{kind: cmdUnknown}},
		{"length not a number", "len", "twelve", command{kind: cmdUnknown}},
		{"length empty", "len", "", command{kind: cmdUnknown}},
		{"cancel", "len_cancel", "", command{kind: cmdCancelLength}},
		{"cancel ignores payload", "len_cancel", "whatever", command{kind: cmdCancelLength}},
		{"toggle upper", "toggle", "upper", command{kind: cmdToggleClass, class: settings.ClassUpper}},
		{"toggle lower", "toggle", "lower", command{kind: cmdToggleClass, class: settings.ClassLower}},
		{"toggle digits", "toggle", "digits", command{kind: cmdToggleClass, class: settings.ClassDigits}},
		{"toggle symbols", "toggle", "symbols", command{kind: cmdToggleClass, class: settings.ClassSymbols}},
		{"toggle unknown", "toggle", "emoji", command{kind: cmdUnknown}},
		{"toggle empty", "toggle", "", command{kind: cmdUnknown}},
		{"generate", "action", "generate", command{kind: cmdGenerate}},
		{"regenerate", "action", "regenerate", command{kind: cmdRegenerate}},
		{"clear", "action", "clear", command{kind: cmdClear}},
		{"help", "action", "help", command{kind: cmdHelp}},
		{"action unknown", "action", "selfdestruct", command{kind: cmdUnknown}},
		{"unknown unique", "bogus", "generate", command{kind: cmdUnknown}},
		{"empty press", "", "", command{kind: cmdUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCommand(tt.unique, tt.payload); got != tt.want {
				t.Errorf("parseCommand(%q, %q) = %+v, want %+v", tt.unique, tt.payload, got, tt.want)
			}
		})
	}
}

func TestUnknownNotice(t *testing.T) {
	if got := unknownNotice("toggle"); got != noticeUnknownToggle {
		t.Errorf("unknownNotice(toggle) = %q, want %q", got, noticeUnknownToggle)
	}
	if got := unknownNotice("action"); got != noticeUnknownAction {
		t.Errorf("unknownNotice(action) = %q, want %q", got, noticeUnknownAction)
	}
	if got := unknownNotice("bogus"); got != noticeUnknownAction {
		t.Errorf("unknownNotice(bogus) = %q, want %q", got, noticeUnknownAction)
	}
}
