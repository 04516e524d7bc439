// Package settings keeps per-user password preferences for the lifetime of
// the process.
package settings

import "github.com/samber/lo"

// Length bounds accepted from custom input.
const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 12
)

// PresetLengths are offered as one-tap choices on the keyboard; custom input
// covers everything else inside the bounds.
var PresetLengths = []int{8, 12, 16, 24}

// Class names one of the four character classes a password can draw from.
type Class string

const (
	ClassUpper   Class = "upper"
	ClassLower   Class = "lower"
	ClassDigits  Class = "digits"
	ClassSymbols Class = "symbols"
)

// AllClasses lists the classes in keyboard order.
var AllClasses = []Class{ClassUpper, ClassLower, ClassDigits, ClassSymbols}

// ParseClass maps a wire token to a Class.
func ParseClass(s string) (Class, bool) {
	switch Class(s) {
	case ClassUpper, ClassLower, ClassDigits, ClassSymbols:
		return Class(s), true
	}
	return "", false
}

// Label returns the class name used on buttons and in summaries.
func (c Class) Label() string {
	switch c {
	case ClassUpper:
		return "Upper"
	case ClassLower:
		return "Lower"
	case ClassDigits:
		return "Digits"
	case ClassSymbols:
		return "Symbols"
	}
	return string(c)
}

// Settings holds one user's password preferences. LastPassword is empty when
// no password has been generated or the user cleared it.
type Settings struct {
	Length       int
	Upper        bool
	Lower        bool
	Digits       bool
	Symbols      bool
	LastPassword string
}

// Defaults returns the settings a user starts with.
func Defaults() Settings {
	return Settings{
		Length: DefaultLength,
		Upper:  true,
		Lower:  true,
		Digits: true,
	}
}

// Enabled reports whether the given class is switched on.
func (s Settings) Enabled(c Class) bool {
	switch c {
	case ClassUpper:
		return s.Upper
	case ClassLower:
		return s.Lower
	case ClassDigits:
		return s.Digits
	case ClassSymbols:
		return s.Symbols
	}
	return false
}

// Toggle flips the given class and reports whether it was recognized.
func (s *Settings) Toggle(c Class) bool {
	switch c {
	case ClassUpper:
		s.Upper = !s.Upper
	case ClassLower:
		s.Lower = !s.Lower
	case ClassDigits:
		s.Digits = !s.Digits
	case ClassSymbols:
		s.Symbols = !s.Symbols
	default:
		return false
	}
	return true
}

// EnabledCount returns how many classes are switched on.
func (s Settings) EnabledCount() int {
	return lo.Count([]bool{s.Upper, s.Lower, s.Digits, s.Symbols}, true)
}
