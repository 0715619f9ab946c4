package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/services"
	"github.com/tbourn/go-content-gateway/internal/textutil"
)

// PlatformInfo describes one supported platform.
type PlatformInfo struct {
	Value    domain.Platform        `json:"value"    example:"instagram"`
	Label    string                 `json:"label"    example:"Instagram"`
	Hashtags *textutil.HashtagLimit `json:"hashtags,omitempty"`
}

// ToneInfo describes one script tone.
type ToneInfo struct {
	Value   domain.Tone `json:"value"   example:"energetic"`
	Label   string      `json:"label"   example:"Energetic"`
	Default bool        `json:"default" example:"false"`
}

// KindInfo describes the fixed provider policy of one generation kind.
type KindInfo struct {
	Kind        domain.Kind `json:"kind"        example:"hashtags"`
	Tier        string      `json:"tier"        example:"fast"`
	Temperature float64     `json:"temperature" example:"0.3"`
}

// CatalogResponse lists the values accepted by the generation endpoints.
type CatalogResponse struct {
	Platforms        []PlatformInfo `json:"platforms"`
	Tones            []ToneInfo     `json:"tones"`
	Kinds            []KindInfo     `json:"kinds"`
	DefaultIdeaCount int            `json:"default_idea_count" example:"5"`
	MaxIdeaCount     int            `json:"max_idea_count"     example:"50"`
}

func buildCatalog() CatalogResponse {
	title := cases.Title(language.English)

	out := CatalogResponse{
		DefaultIdeaCount: domain.DefaultIdeaCount,
		MaxIdeaCount:     domain.MaxIdeaCount,
	}
	for _, p := range domain.Platforms {
		info := PlatformInfo{Value: p, Label: p.Label()}
		if lim, ok := textutil.PlatformHashtagLimit(string(p)); ok {
			info.Hashtags = &lim
		}
		out.Platforms = append(out.Platforms, info)
	}
	for _, t := range domain.Tones {
		out.Tones = append(out.Tones, ToneInfo{
			Value:   t,
			Label:   title.String(string(t)),
			Default: t == domain.DefaultTone,
		})
	}
	for _, k := range domain.Kinds {
		p := services.Policies[k]
		out.Kinds = append(out.Kinds, KindInfo{
			Kind:        k,
			Tier:        string(p.Tier),
			Temperature: services.RoundTemperature(p.Temperature),
		})
	}
	return out
}

// Catalog godoc
// @ID          catalog
// @Summary     Supported values
// @Description Lists platforms (with hashtag guidance), tones and the provider policy per generation kind.
// @Tags        Catalog
// @Produce     json
//
// @Success     200  {object} handlers.CatalogResponse
// @Router      /catalog [get]
func (h *Handlers) Catalog(c *gin.Context) {
	ok(c, http.StatusOK, buildCatalog())
}
