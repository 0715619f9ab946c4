package domain

import "testing"

func TestParsePlatform(t *testing.T) {
	cases := map[string]struct {
		want Platform
		ok   bool
	}{
		"tiktok":       {PlatformTikTok, true},
		"  Instagram ": {PlatformInstagram, true},
		"YOUTUBE":      {PlatformYouTube, true},
		"linkedin":     {PlatformLinkedIn, true},
		"twitter":      {PlatformTwitter, true},
		"myspace":      {"myspace", false},
		"":             {"", false},
	}
	for in, tc := range cases {
		got, ok := ParsePlatform(in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParsePlatform(%q) = (%q,%v); want (%q,%v)", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPlatformLabel(t *testing.T) {
	if PlatformTwitter.Label() != "Twitter/X" {
		t.Fatalf("twitter label = %q", PlatformTwitter.Label())
	}
	if Platform("other").Label() != "other" {
		t.Fatalf("unknown platform label should echo value")
	}
	for _, p := range Platforms {
		if p.Label() == "" {
			t.Fatalf("empty label for %q", p)
		}
	}
}

func TestParseTone_DefaultAndUnknown(t *testing.T) {
	if got, ok := ParseTone(""); !ok || got != ToneCasual {
		t.Fatalf("empty tone should default to casual, got (%q,%v)", got, ok)
	}
	if got, ok := ParseTone("   "); !ok || got != ToneCasual {
		t.Fatalf("blank tone should default to casual, got (%q,%v)", got, ok)
	}
	if got, ok := ParseTone(" Humorous "); !ok || got != ToneHumorous {
		t.Fatalf("ParseTone normalize failed: (%q,%v)", got, ok)
	}
	if _, ok := ParseTone("sarcastic"); ok {
		t.Fatalf("unknown tone must be rejected")
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range Kinds {
		if !k.Valid() {
			t.Fatalf("%q should be valid", k)
		}
	}
	if Kind("poem").Valid() {
		t.Fatalf("unknown kind should be invalid")
	}
}

func TestGenerationTableName(t *testing.T) {
	if (Generation{}).TableName() != "generations" {
		t.Fatalf("unexpected table name")
	}
}
