package passgen

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "all classes",
			opts:    Options{Length: 16, Lower: true, Upper: true, Digits: true, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "lower only",
			opts:    Options{Length: 12, Lower: true},
			wantErr: nil,
		},
		{
			name:    "digits only",
			opts:    Options{Length: 8, Digits: true},
			wantErr: nil,
		},
		{
			name:    "symbols only",
			opts:    Options{Length: 24, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "long password",
			opts:    Options{Length: 128, Lower: true, Upper: true},
			wantErr: nil,
		},
		{
			name:    "length shorter than class count",
			opts:    Options{Length: 2, Lower: true, Upper: true, Digits: true, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "single char",
			opts:    Options{Length: 1, Lower: true, Upper: true},
			wantErr: nil,
		},
		{
			name:    "zero length",
			opts:    Options{Length: 0, Lower: true},
			wantErr: ErrLength,
		},
		{
			name:    "negative length",
			opts:    Options{Length: -3, Lower: true},
			wantErr: ErrLength,
		},
		{
			name:    "no classes enabled",
			opts:    Options{Length: 16},
			wantErr: ErrNoClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Generate() = %q, want empty on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(got) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(got), tt.opts.Length)
			}
		})
	}
}

func TestGenerateCoversEnabledClasses(t *testing.T) {
	opts := Options{Length: 16, Lower: true, Upper: true, Digits: true, Symbols: true}

	// Repeat to catch positional or seeding mistakes that only show up
	// intermittently.
	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if !strings.ContainsAny(password, lowerChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, upperChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, digitChars) {
			t.Errorf("password %q missing digit", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol", password)
		}
	}
}

func TestGenerateStaysInsidePool(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		pool string
	}{
		{
			name: "lower only",
			opts: Options{Length: 32, Lower: true},
			pool: lowerChars,
		},
		{
			name: "upper only",
			opts: Options{Length: 32, Upper: true},
			pool: upperChars,
		},
		{
			name: "digits only",
			opts: Options{Length: 32, Digits: true},
			pool: digitChars,
		},
		{
			name: "symbols only",
			opts: Options{Length: 32, Symbols: true},
			pool: symbolChars,
		},
		{
			name: "lower and digits",
			opts: Options{Length: 32, Lower: true, Digits: true},
			pool: lowerChars + digitChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.pool, ch) {
					t.Errorf("password contains %q, outside enabled pool %q", string(ch), tt.pool)
				}
			}
		})
	}
}

func TestGenerateTruncatesShortLengths(t *testing.T) {
	opts := Options{Length: 2, Lower: true, Upper: true, Digits: true, Symbols: true}
	pool := lowerChars + upperChars + digitChars + symbolChars

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 2 {
			t.Fatalf("Generate() length = %d, want 2", len(password))
		}
		for _, ch := range password {
			if !strings.ContainsRune(pool, ch) {
				t.Errorf("password contains %q, outside pool", string(ch))
			}
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := Options{Length: 12, Lower: true, Upper: true, Digits: true}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateUniformDistribution(t *testing.T) {
	const (
		rounds = 500
		length = 26
	)

	counts := make(map[rune]int)
	for i := 0; i < rounds; i++ {
		password, err := Generate(Options{Length: length, Lower: true})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, r := range password {
			counts[r]++
		}
	}

	expected := float64(rounds*length) / float64(len(lowerChars))
	var chi float64
	for _, r := range lowerChars {
		diff := float64(counts[r]) - expected
		chi += diff * diff / expected
	}
	// 75 sits far above the p=0.001 critical value for 25 degrees of freedom.
	if chi > 75 {
		t.Errorf("chi-square = %.1f, letter distribution looks biased", chi)
	}
}

func TestSymbolAlphabet(t *testing.T) {
	if strings.Contains(symbolChars, "`") {
		t.Error("symbol alphabet must not contain a backtick")
	}
	if len(symbolChars) != 31 {
		t.Errorf("symbol alphabet has %d characters, want 31", len(symbolChars))
	}
}
