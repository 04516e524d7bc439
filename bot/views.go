package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m3rciful/pwgenbot/settings"
	"github.com/m3rciful/pwgenbot/telegram/keyboard"

	"github.com/samber/lo"
	tele "gopkg.in/telebot.v4"
)

// Callback uniques forming the button vocabulary.
const (
	cbLength       = "len"
	cbLengthCancel = "len_cancel"
	cbToggle       = "toggle"
	cbAction       = "action"
)

// Action payloads carried under the cbAction unique.
const (
	payloadGenerate   = "generate"
	payloadRegenerate = "regenerate"
	payloadClear      = "clear"
	payloadHelp       = "help"
	payloadCustom     = "custom"
)

const (
	noticeEmptyPool      = "Character pool is empty. Enable at least one character set."
	noticeNoPrevious     = "No previous password found — generating new."
	noticeCleared        = "Cleared last password."
	noticeCancelled      = "Cancelled."
	noticeUnknownToggle  = "Unknown toggle."
	noticeUnknownAction  = "Unknown action."
	noticeUnknownCommand = "Unknown command. Use /help."
	noticeGenerateError  = "Error generating password."
	noticeRegenError     = "Failed to regenerate."

	helpShortText       = "Tap length buttons and toggles, then Generate. /help for more details."
	strayPointerText    = "Press /start to open the password generator."
	promptLengthText    = "✏️ *Custom length*\n\nSend a number between 4 and 128."
	lengthCancelledText = "Length change cancelled."
)

const helpText = "How to use:\n" +
	"• Tap a length button to set password length.\n" +
	"• Press ✏️ Custom to type any length from 4 to 128.\n" +
	"• Toggle Upper/Lower/Digits/Symbols to include/exclude character sets.\n" +
	"• Press *Generate* to create a password.\n" +
	"• Press *Regenerate* to make another password with same settings.\n" +
	"• Press *Clear* to clear stored last password.\n\n" +
	"Security tip: don't share generated passwords in public chats. Use private chat."

func yesNo(b bool) string {
	return lo.Ternary(b, "Yes", "No")
}

// startText is the intro shown by /start, above the settings keyboard.
func startText(s settings.Settings) string {
	return fmt.Sprintf(
		"🔐 *Password Generator*\n\n"+
			"Use the buttons to choose password length and character sets. Then press Generate.\n\n"+
			"*Current length:* %d\n"+
			"*Upper:* %s  *Lower:* %s\n"+
			"*Digits:* %s  *Symbols:* %s",
		s.Length, yesNo(s.Upper), yesNo(s.Lower), yesNo(s.Digits), yesNo(s.Symbols),
	)
}

// summaryText is the settings panel body used for in-place edits. The last
// generated password is shown while one is stored and disappears after Clear.
func summaryText(s settings.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"🔐 *Password Generator — Settings*\n\n"+
			"*Length:* %d\n"+
			"*Upper:* %s\n"+
			"*Lower:* %s\n"+
			"*Digits:* %s\n"+
			"*Symbols:* %s\n",
		s.Length, yesNo(s.Upper), yesNo(s.Lower), yesNo(s.Digits), yesNo(s.Symbols),
	)
	if s.LastPassword != "" {
		fmt.Fprintf(&b, "\n*Last password:* `%s`\n", s.LastPassword)
	}
	b.WriteString("\nUse the buttons below to modify settings or generate a password.")
	return b.String()
}

func passwordMessage(password string, regen bool) string {
	prefix := lo.Ternary(regen, "🔁 *Regenerated password:*", "🔐 *Generated password:*")
	return prefix + "\n`" + password + "`"
}

func checkMark(on bool) string {
	return lo.Ternary(on, "✅ ", "⬜️ ")
}

func lengthLabel(current, preset int) string {
	return checkMark(current == preset) + strconv.Itoa(preset)
}

// customLengthLabel shows the active value once the length left the presets.
func customLengthLabel(current int) string {
	if lo.Contains(settings.PresetLengths, current) {
		return "✏️ Custom"
	}
	return fmt.Sprintf("✏️ %d", current)
}

func toggleLabel(s settings.Settings, class settings.Class) string {
	return checkMark(s.Enabled(class)) + class.Label()
}

// mainKeyboard renders the settings panel keyboard. The layout depends only
// on the settings value, so equal settings produce an identical keyboard.
func mainKeyboard(s settings.Settings) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	lengthRow := lo.Map(settings.PresetLengths, func(preset int, _ int) tele.Btn {
		return markup.Data(lengthLabel(s.Length, preset), cbLength, strconv.Itoa(preset))
	})
	lengthRow = append(lengthRow, markup.Data(customLengthLabel(s.Length), cbLength, payloadCustom))

	toggles := lo.Map(settings.AllClasses, func(class settings.Class, _ int) tele.Btn {
		return markup.Data(toggleLabel(s, class), cbToggle, string(class))
	})

	rows := [][]tele.Btn{lengthRow}
	rows = append(rows, keyboard.ChunkButtons(toggles, 2)...)
	rows = append(rows, []tele.Btn{
		markup.Data("🔁 Generate", cbAction, payloadGenerate),
		markup.Data("♻️ Regenerate", cbAction, payloadRegenerate),
		markup.Data("🗑️ Clear", cbAction, payloadClear),
	})
	rows = append(rows, []tele.Btn{
		markup.Data("ℹ️ Help", cbAction, payloadHelp),
		// telebot drops an empty switch_inline_query during marshalling,
		// a single space is the closest the wire can express.
		markup.Query("🔗 Share", " "),
	})

	markup.InlineKeyboard = keyboard.ToInlineKeyboard(rows)
	return markup
}
