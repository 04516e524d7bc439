package bot

import (
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/m3rciful/pwgenbot/passgen"
	"github.com/m3rciful/pwgenbot/settings"
)

func classCounts(password string) (upper, lower, digit, symbol int) {
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digit++
		default:
			symbol++
		}
	}
	return upper, lower, digit, symbol
}

func TestGenerateWithDefaults(t *testing.T) {
	store := settings.NewStore()
	s := store.GetOrCreate(1)

	password, err := passgen.Generate(passgenOptions(s))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != settings.DefaultLength {
		t.Errorf("password length = %d, want %d", len(password), settings.DefaultLength)
	}

	upper, lower, digit, symbol := classCounts(password)
	if upper == 0 || lower == 0 || digit == 0 {
		t.Errorf("password %q missing a default class (upper=%d lower=%d digit=%d)",
			password, upper, lower, digit)
	}
	if symbol != 0 {
		t.Errorf("password %q contains %d symbols with symbols disabled", password, symbol)
	}

	store.Update(1, func(st *settings.Settings) { st.LastPassword = password })
	if !strings.Contains(summaryText(store.GetOrCreate(1)), password) {
		t.Error("summary does not show the password recorded after generation")
	}
}

func TestGenerateShortWithAllClasses(t *testing.T) {
	store := settings.NewStore()
	store.Update(1, func(s *settings.Settings) {
		s.Length = 8
		s.Toggle(settings.ClassSymbols)
	})
	s := store.GetOrCreate(1)

	for i := 0; i < 25; i++ {
		password, err := passgen.Generate(passgenOptions(s))
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 8 {
			t.Fatalf("password length = %d, want 8", len(password))
		}
		upper, lower, digit, symbol := classCounts(password)
		if upper == 0 || lower == 0 || digit == 0 || symbol == 0 {
			t.Errorf("password %q does not cover all four classes", password)
		}
	}
}

func TestGenerateWithEmptyPool(t *testing.T) {
	store := settings.NewStore()
	store.Update(1, func(s *settings.Settings) {
		s.Upper, s.Lower, s.Digits, s.Symbols = false, false, false, false
	})
	before := store.GetOrCreate(1)

	_, err := passgen.Generate(passgenOptions(before))
	if !errors.Is(err, passgen.ErrNoClasses) {
		t.Fatalf("Generate() error = %v, want ErrNoClasses", err)
	}
	if store.GetOrCreate(1) != before {
		t.Error("failed generation modified the stored settings")
	}
}

func TestClearRemovesPasswordFromSummary(t *testing.T) {
	store := settings.NewStore()
	s := store.GetOrCreate(1)

	password, err := passgen.Generate(passgenOptions(s))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	store.Update(1, func(st *settings.Settings) { st.LastPassword = password })

	if !strings.Contains(summaryText(store.GetOrCreate(1)), "Last password") {
		t.Fatal("summary does not reference the stored password")
	}

	store.Update(1, func(st *settings.Settings) { st.LastPassword = "" })

	after := summaryText(store.GetOrCreate(1))
	if strings.Contains(after, "Last password") || strings.Contains(after, password) {
		t.Error("summary still references the password after Clear")
	}
}

func TestRegenerateMatchesGenerateForFreshUsers(t *testing.T) {
	store := settings.NewStore()
	s := store.GetOrCreate(1)

	// A fresh user has nothing stored, so regenerate falls back to plain
	// generation and only the message prefix differs.
	if s.LastPassword != "" {
		t.Fatalf("fresh user starts with a stored password: %q", s.LastPassword)
	}

	password, err := passgen.Generate(passgenOptions(s))
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(password) != settings.DefaultLength {
		t.Errorf("password length = %d, want %d", len(password), settings.DefaultLength)
	}
	if !strings.HasPrefix(passwordMessage(password, true), "🔁 *Regenerated password:*") {
		t.Error("regenerate message misses its prefix")
	}
}
