package settings

import "testing"

func TestDefaults(t *testing.T) {
	s := Defaults()

	if s.Length != DefaultLength {
		t.Errorf("Length = %d, want %d", s.Length, DefaultLength)
	}
	if !s.Upper || !s.Lower || !s.Digits {
		t.Errorf("Upper/Lower/Digits = %v/%v/%v, want all true", s.Upper, s.Lower, s.Digits)
	}
	if s.Symbols {
		t.Error("Symbols enabled by default, want disabled")
	}
	if s.LastPassword != "" {
		t.Errorf("LastPassword = %q, want empty", s.LastPassword)
	}
}

func TestToggle(t *testing.T) {
	for _, class := range AllClasses {
		t.Run(string(class), func(t *testing.T) {
			s := Defaults()
			was := s.Enabled(class)

			if !s.Toggle(class) {
				t.Fatalf("Toggle(%q) not recognized", class)
			}
			if s.Enabled(class) == was {
				t.Errorf("Toggle(%q) did not flip the class", class)
			}
			if !s.Toggle(class) {
				t.Fatalf("Toggle(%q) not recognized on second flip", class)
			}
			if s.Enabled(class) != was {
				t.Errorf("double Toggle(%q) did not restore the class", class)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		s := Defaults()
		if s.Toggle(Class("emoji")) {
			t.Error("Toggle accepted an unknown class")
		}
		if s != Defaults() {
			t.Error("unknown Toggle modified settings")
		}
	})
}

func TestParseClass(t *testing.T) {
	for _, class := range AllClasses {
		got, ok := ParseClass(string(class))
		if !ok || got != class {
			t.Errorf("ParseClass(%q) = %q, %v", class, got, ok)
		}
	}
	if _, ok := ParseClass("emoji"); ok {
		t.Error("ParseClass accepted an unknown token")
	}
	if _, ok := ParseClass(""); ok {
		t.Error("ParseClass accepted an empty token")
	}
}

func TestClassLabel(t *testing.T) {
	want := map[Class]string{
		ClassUpper:   "Upper",
		ClassLower:   "Lower",
		ClassDigits:  "Digits",
		ClassSymbols: "Symbols",
	}
	for class, label := range want {
		if got := class.Label(); got != label {
			t.Errorf("Label(%q) = %q, want %q", class, got, label)
		}
	}
}

func TestEnabledCount(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
		want int
	}{
		{"defaults", Defaults(), 3},
		{"none", Settings{Length: 12}, 0},
		{"all", Settings{Length: 12, Upper: true, Lower: true, Digits: true, Symbols: true}, 4},
		{"symbols only", Settings{Length: 12, Symbols: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.EnabledCount(); got != tt.want {
				t.Errorf("EnabledCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
