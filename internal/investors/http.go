package investors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	matcher *Matcher
}

func NewHandler(m *Matcher) *Handler {
	return &Handler{matcher: m}
}

type matchReq struct {
	Answers  map[string]string `json:"answers,omitempty"`
	Fragment string            `json:"fragment,omitempty"`
}

// match accepts either a raw answers record or an #investors= fragment
// payload and returns suggested investor profiles.
func (h *Handler) match(c *gin.Context) {
	var req matchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answers := req.Answers
	if len(answers) == 0 && req.Fragment != "" {
		decoded, err := DecodeAnswers(payloadFromFragment(req.Fragment))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "malformed investors payload"})
			return
		}
		answers = decoded
	}
	if len(answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no answers provided"})
		return
	}

	matches := h.matcher.Match(c.Request.Context(), answers)
	c.JSON(http.StatusOK, gin.H{"ok": true, "investors": matches})
}

// matchGet serves viewer contexts that only have a fragment to offer,
// passed as a query parameter.
func (h *Handler) matchGet(c *gin.Context) {
	fragment := c.Query("fragment")
	if fragment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no fragment provided"})
		return
	}

	answers, err := DecodeAnswers(payloadFromFragment(fragment))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "malformed investors payload"})
		return
	}

	matches := h.matcher.Match(c.Request.Context(), answers)
	c.JSON(http.StatusOK, gin.H{"ok": true, "investors": matches})
}

// payloadFromFragment accepts either a bare payload or a full viewer
// fragment and returns the encoded part.
func payloadFromFragment(fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if _, after, found := strings.Cut(fragment, "investors="); found {
		if before, _, cut := strings.Cut(after, "&"); cut {
			return before
		}
		return after
	}
	return fragment
}

// Register attaches investor routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
	rg.GET("/match", h.matchGet)
}
