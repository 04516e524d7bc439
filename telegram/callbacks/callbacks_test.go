package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestSplitRawData(t *testing.T) {
	cases := []struct {
		name        string
		data        string
		wantUnique  string
		wantPayload string
	}{
		{name: "marker with payload", data: "\flen|16", wantUnique: "len", wantPayload: "16"},
		{name: "marker only", data: "\flen_cancel", wantUnique: "len_cancel", wantPayload: ""},
		{name: "no marker", data: "toggle|symbols", wantUnique: "toggle", wantPayload: "symbols"},
		{name: "payload keeps separators", data: "\faction|a|b", wantUnique: "action", wantPayload: "a|b"},
		{name: "empty", data: "", wantUnique: "", wantPayload: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unique, payload := Split(&tele.Callback{Data: tc.data})
			if unique != tc.wantUnique || payload != tc.wantPayload {
				t.Fatalf("Split(%q) = (%q, %q), want (%q, %q)",
					tc.data, unique, payload, tc.wantUnique, tc.wantPayload)
			}
		})
	}
}

func TestSplitPreParsed(t *testing.T) {
	// Registered uniques arrive with Unique set and Data reduced to the payload.
	unique, payload := Split(&tele.Callback{Unique: "len", Data: "24"})
	if unique != "len" || payload != "24" {
		t.Fatalf("Split pre-parsed = (%q, %q), want (len, 24)", unique, payload)
	}
}

func TestSplitNil(t *testing.T) {
	unique, payload := Split(nil)
	if unique != "" || payload != "" {
		t.Fatalf("expected empty results for nil callback, got (%q, %q)", unique, payload)
	}
}
