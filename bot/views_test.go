package bot

import (
	"reflect"
	"strings"
	"testing"

	"github.com/m3rciful/pwgenbot/settings"

	tele "gopkg.in/telebot.v4"
)

func TestStartTextDefaults(t *testing.T) {
	text := startText(settings.Defaults())

	for _, want := range []string{
		"🔐 *Password Generator*",
		"*Current length:* 12",
		"*Upper:* Yes",
		"*Symbols:* No",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("startText missing %q:\n%s", want, text)
		}
	}
}

func TestSummaryTextIdempotent(t *testing.T) {
	s := settings.Defaults()
	s.Length = 16
	s.Symbols = true

	if summaryText(s) != summaryText(s) {
		t.Error("summaryText differs for equal settings")
	}

	other := s
	other.Length = 24
	if summaryText(s) == summaryText(other) {
		t.Error("summaryText identical for different settings")
	}
}

func TestSummaryTextLastPassword(t *testing.T) {
	s := settings.Defaults()

	if strings.Contains(summaryText(s), "Last password") {
		t.Error("summary references a password before one was generated")
	}

	s.LastPassword = "s3cr3t!pw"
	withPassword := summaryText(s)
	if !strings.Contains(withPassword, "*Last password:* `s3cr3t!pw`") {
		t.Errorf("summary does not show the stored password:\n%s", withPassword)
	}

	s.LastPassword = ""
	if strings.Contains(summaryText(s), "Last password") {
		t.Error("summary still references the password after clearing")
	}
}

func TestPasswordMessage(t *testing.T) {
	if got := passwordMessage("abc", false); got != "🔐 *Generated password:*\n`abc`" {
		t.Errorf("generate message = %q", got)
	}
	if got := passwordMessage("abc", true); got != "🔁 *Regenerated password:*\n`abc`" {
		t.Errorf("regenerate message = %q", got)
	}
}

func keyboardButtons(markup *tele.ReplyMarkup) []tele.InlineButton {
	var buttons []tele.InlineButton
	for _, row := range markup.InlineKeyboard {
		buttons = append(buttons, row...)
	}
	return buttons
}

func buttonTexts(markup *tele.ReplyMarkup) []string {
	var texts []string
	for _, b := range keyboardButtons(markup) {
		texts = append(texts, b.Text)
	}
	return texts
}

func TestMainKeyboardMarks(t *testing.T) {
	texts := strings.Join(buttonTexts(mainKeyboard(settings.Defaults())), "|")

	for _, want := range []string{
		"✅ 12", "⬜️ 8", "⬜️ 16", "⬜️ 24",
		"✅ Upper", "✅ Lower", "✅ Digits", "⬜️ Symbols",
		"✏️ Custom",
		"🔁 Generate", "♻️ Regenerate", "🗑️ Clear",
		"ℹ️ Help", "🔗 Share",
	} {
		if !strings.Contains(texts, want) {
			t.Errorf("keyboard missing button %q in %s", want, texts)
		}
	}
}

func TestMainKeyboardCustomLength(t *testing.T) {
	s := settings.Defaults()
	s.Length = 10

	texts := strings.Join(buttonTexts(mainKeyboard(s)), "|")
	if !strings.Contains(texts, "✏️ 10") {
		t.Errorf("custom button does not show the active length: %s", texts)
	}
	for _, preset := range []string{"✅ 8", "✅ 12", "✅ 16", "✅ 24"} {
		if strings.Contains(texts, preset) {
			t.Errorf("preset %q marked while a custom length is active", preset)
		}
	}
}

func TestMainKeyboardLayout(t *testing.T) {
	markup := mainKeyboard(settings.Defaults())

	rows := markup.InlineKeyboard
	if len(rows) != 5 {
		t.Fatalf("keyboard has %d rows, want 5", len(rows))
	}
	if len(rows[0]) != 5 {
		t.Errorf("length row has %d buttons, want 5", len(rows[0]))
	}
	if rows[0][0].Unique != cbLength || rows[0][0].Data != "8" {
		t.Errorf("first length button wired as (%q, %q)", rows[0][0].Unique, rows[0][0].Data)
	}

	var share *tele.InlineButton
	for _, b := range keyboardButtons(markup) {
		if b.Text == "🔗 Share" {
			share = &b
			break
		}
	}
	if share == nil {
		t.Fatal("share button missing")
	}
	if share.InlineQuery == "" {
		t.Error("share button carries no inline query and would serialize without an action")
	}
}

func TestMainKeyboardIdempotent(t *testing.T) {
	s := settings.Defaults()
	s.Symbols = true

	if !reflect.DeepEqual(mainKeyboard(s), mainKeyboard(s)) {
		t.Error("mainKeyboard differs for equal settings")
	}
}

func TestInvalidLengthText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "abc", "\"abc\" is not a valid length. Send a number between 4 and 128."},
		{"empty", "", "Send a number between 4 and 128."},
		{"whitespace only", "  \n ", "Send a number between 4 and 128."},
		{"markdown escaped", "a_b", "\"a\\_b\" is not a valid length. Send a number between 4 and 128."},
		{"multiline collapsed", "a\nb", "\"a b\" is not a valid length. Send a number between 4 and 128."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := invalidLengthText(tt.input); got != tt.want {
				t.Errorf("invalidLengthText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
