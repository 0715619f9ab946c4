// Package domain defines the request shapes accepted by the generation
// gateway, the enumerations they draw from, and the audit record persisted
// for each gateway call.
package domain

import "strings"

// Kind identifies one of the three generation flows.
type Kind string

const (
	KindIdeas    Kind = "ideas"
	KindScript   Kind = "script"
	KindHashtags Kind = "hashtags"
)

// Kinds lists every generation kind in display order.
var Kinds = []Kind{KindIdeas, KindScript, KindHashtags}

// Valid reports whether k is a known generation kind.
func (k Kind) Valid() bool {
	switch k {
	case KindIdeas, KindScript, KindHashtags:
		return true
	}
	return false
}

// Platform is a supported social network.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformTikTok, PlatformInstagram, PlatformYouTube, PlatformLinkedIn, PlatformTwitter}

// ParsePlatform normalizes s (trim + lower case) and reports whether it names
// a supported platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, true
		}
	}
	return p, false
}

// Label returns the human-facing platform name.
func (p Platform) Label() string {
	switch p {
	case PlatformTikTok:
		return "TikTok"
	case PlatformInstagram:
		return "Instagram"
	case PlatformYouTube:
		return "YouTube"
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformTwitter:
		return "Twitter/X"
	}
	return string(p)
}

// Tone is the stylistic register applied to script prompts.
type Tone string

const (
	ToneCasual         Tone = "casual"
	ToneProfessional   Tone = "professional"
	ToneEnergetic      Tone = "energetic"
	ToneAuthoritative  Tone = "authoritative"
	ToneConversational Tone = "conversational"
	ToneHumorous       Tone = "humorous"
)

// DefaultTone is applied when a script request omits the tone.
const DefaultTone = ToneCasual

// Tones lists every supported tone in display order.
var Tones = []Tone{ToneCasual, ToneProfessional, ToneEnergetic, ToneAuthoritative, ToneConversational, ToneHumorous}

// ParseTone normalizes s and reports whether it names a supported tone.
// An empty value resolves to DefaultTone.
func ParseTone(s string) (Tone, bool) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return DefaultTone, true
	}
	for _, known := range Tones {
		if t == known {
			return t, true
		}
	}
	return t, false
}

const (
	// DefaultIdeaCount is used when a request omits count or sends 0.
	DefaultIdeaCount = 5
	// MaxIdeaCount bounds a single idea batch.
	MaxIdeaCount = 50
)

// IdeaRequest asks for a batch of content ideas.
type IdeaRequest struct {
	Niche    string `json:"niche"              example:"fitness"`
	Platform string `json:"platform"           example:"tiktok"`
	Count    int    `json:"count,omitempty"    example:"5"`
}

// ScriptRequest asks for a short-form video script.
type ScriptRequest struct {
	Idea  string `json:"idea"           example:"3 core moves you can do at your desk"`
	Brand string `json:"brand"          example:"FitDesk"`
	Tone  string `json:"tone,omitempty" example:"energetic"`
}

// HashtagRequest asks for a tiered hashtag set.
type HashtagRequest struct {
	Content  string `json:"content"  example:"a workout video"`
	Platform string `json:"platform" example:"instagram"`
	Niche    string `json:"niche"    example:"fitness"`
}

// Result is the provider's first completion, returned verbatim. Text may be
// empty when the provider produced no content.
type Result struct {
	Kind  Kind
	Text  string
	Model string
}
