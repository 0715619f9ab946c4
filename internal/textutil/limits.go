package textutil

import "github.com/tbourn/go-content-gateway/internal/domain"

// HashtagLimit is a platform's hashtag guidance. Zero fields mean "no
// published limit".
type HashtagLimit struct {
	Platform       string `json:"platform" example:"instagram"`
	MaxHashtags    int    `json:"max_hashtags,omitempty" example:"30"`
	RecommendedMin int    `json:"recommended_min,omitempty"`
	RecommendedMax int    `json:"recommended_max,omitempty"`
	MaxChars       int    `json:"max_chars,omitempty" example:"2200"`
	Guidance       string `json:"guidance" example:"30 hashtags max"`
	OverLimit      bool   `json:"over_limit"`
}

var hashtagLimits = map[domain.Platform]HashtagLimit{
	domain.PlatformInstagram: {MaxHashtags: 30, MaxChars: 2200, Guidance: "30 hashtags max"},
	domain.PlatformTikTok:    {RecommendedMax: 20, MaxChars: 100, Guidance: "20 hashtags recommended"},
	domain.PlatformLinkedIn:  {RecommendedMin: 3, RecommendedMax: 5, Guidance: "3-5 hashtags recommended"},
	domain.PlatformTwitter:   {RecommendedMin: 2, RecommendedMax: 3, Guidance: "2-3 hashtags recommended"},
	domain.PlatformYouTube:   {MaxHashtags: 20, RecommendedMin: 15, RecommendedMax: 20, Guidance: "15-20 hashtags max"},
}

// PlatformHashtagLimit looks up guidance for a platform value.
func PlatformHashtagLimit(platform string) (HashtagLimit, bool) {
	p, ok := domain.ParsePlatform(platform)
	if !ok {
		return HashtagLimit{}, false
	}
	lim, ok := hashtagLimits[p]
	if !ok {
		return HashtagLimit{}, false
	}
	lim.Platform = string(p)
	return lim, true
}

// Exceeded reports whether the counts break a hard limit. Recommendations
// are advisory; TikTok's hashtag figure is treated as a cap.
func (l HashtagLimit) Exceeded(hashtags, chars int) bool {
	hard := l.MaxHashtags
	if hard == 0 && l.RecommendedMin == 0 {
		hard = l.RecommendedMax
	}
	if hard > 0 && hashtags > hard {
		return true
	}
	return l.MaxChars > 0 && chars > l.MaxChars
}
