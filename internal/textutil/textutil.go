// Package textutil holds the pure text helpers behind the presentation
// features: compact counters, hashtag and word statistics, reading time and
// the single-line hashtag transform. Nothing here performs I/O.
package textutil

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the speaking rate used for script reading time.
const WordsPerMinute = 150

// FormatCount renders n with one decimal and an M or K suffix once it
// reaches a million or a thousand; smaller values are printed as-is.
//
//	FormatCount(2456789) // "2.5M"
//	FormatCount(856000)  // "856.0K"
//	FormatCount(234)     // "234"
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// CountHashtags returns the number of '#' characters in s.
func CountHashtags(s string) int {
	return strings.Count(s, "#")
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadingTimeMinutes is ceil(words / WordsPerMinute). Empty text reads in 0.
func ReadingTimeMinutes(s string) int {
	w := WordCount(s)
	if w == 0 {
		return 0
	}
	return int(math.Ceil(float64(w) / WordsPerMinute))
}

// JoinLines trims each line, drops blank ones and joins the rest with a
// single space: "#fit\n#workout\n#core" becomes "#fit #workout #core".
func JoinLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// Stats summarizes a generated text for display.
type Stats struct {
	Words          int           `json:"words" example:"152"`
	ReadingMinutes int           `json:"reading_minutes" example:"2"`
	Hashtags       int           `json:"hashtags" example:"3"`
	Characters     int           `json:"characters" example:"19"`
	SingleLine     string        `json:"single_line" example:"#fit #workout #core"`
	Limit          *HashtagLimit `json:"limit,omitempty"`
}

// Analyze computes Stats for text. When platform is a known value the
// platform's hashtag guidance is attached.
func Analyze(text, platform string) Stats {
	line := JoinLines(text)
	st := Stats{
		Words:          WordCount(text),
		ReadingMinutes: ReadingTimeMinutes(text),
		Hashtags:       CountHashtags(text),
		Characters:     utf8.RuneCountInString(line),
		SingleLine:     line,
	}
	if lim, ok := PlatformHashtagLimit(platform); ok {
		st.Limit = &lim
		st.Limit.OverLimit = lim.Exceeded(st.Hashtags, st.Characters)
	}
	return st
}
