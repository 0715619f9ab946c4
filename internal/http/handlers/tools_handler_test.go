package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-content-gateway/internal/textutil"
)

func newToolsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tools/text-stats", New(nil, nil, nil).TextStats)
	return r
}

func TestTextStats_Hashtags(t *testing.T) {
	r := newToolsRouter()

	w := postJSON(r, "/tools/text-stats", `{"text":"HIGH-VOLUME: #fitness #workout\n\n NICHE: #deskfit ","platform":"Instagram"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	st := decode[textutil.Stats](t, w)
	if st.Hashtags != 3 {
		t.Fatalf("hashtags=%d", st.Hashtags)
	}
	if st.SingleLine != "HIGH-VOLUME: #fitness #workout NICHE: #deskfit" {
		t.Fatalf("single_line=%q", st.SingleLine)
	}
	if st.Limit == nil || st.Limit.Platform != "instagram" || st.Limit.OverLimit {
		t.Fatalf("unexpected limit: %+v", st.Limit)
	}
}

func TestTextStats_ReadingTime(t *testing.T) {
	r := newToolsRouter()

	text := strings.Repeat("word ", 151)
	w := postJSON(r, "/tools/text-stats", `{"text":"`+text+`"}`)
	st := decode[textutil.Stats](t, w)
	if st.Words != 151 || st.ReadingMinutes != 2 {
		t.Fatalf("words=%d minutes=%d", st.Words, st.ReadingMinutes)
	}
	if st.Limit != nil {
		t.Fatalf("no platform, no limit expected")
	}

	w = postJSON(r, "/tools/text-stats", `{}`)
	st = decode[textutil.Stats](t, w)
	if w.Code != http.StatusOK || st.Words != 0 || st.ReadingMinutes != 0 {
		t.Fatalf("empty text: status=%d %+v", w.Code, st)
	}
}

func TestTextStats_UnknownPlatform_400(t *testing.T) {
	r := newToolsRouter()

	w := postJSON(r, "/tools/text-stats", `{"text":"#a","platform":"myspace"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	er := decode[ErrorResponse](t, w)
	if er.Code != ErrCodeValidation || len(er.Fields) != 1 || er.Fields[0].Field != "platform" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}
