package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/nfdog/internal/card"
	"github.com/youruser/nfdog/internal/logging"
)

// CardComposer renders a card; it never fails.
type CardComposer interface {
	Compose(ctx context.Context, req card.Request) card.Result
}

type Handler struct {
	composer CardComposer
}

func NewHandler(composer CardComposer) *Handler {
	return &Handler{composer: composer}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ogImage always answers 200 with a PNG; failures are drawn into the image
// so social crawlers never see an error status.
func (h *Handler) ogImage(c *gin.Context) {
	req := card.ParseRequest(c.Query("name"), c.Query("network"), c.Query("qr"))

	start := time.Now()
	res := h.composer.Compose(c.Request.Context(), req)
	logging.Info("og %s name=%q network=%s outcome=%s took=%s",
		c.GetString("request_id"), req.Name, req.Network, res.Outcome, time.Since(start).Round(time.Millisecond))

	c.Header("X-Og-Outcome", res.Outcome.String())
	c.Header("Cache-Control", cacheControl(res.Outcome))
	c.Data(http.StatusOK, "image/png", res.PNG)
}

func cacheControl(o card.Outcome) string {
	switch o {
	case card.OutcomeError:
		return "no-store"
	case card.OutcomeFallback:
		return "public, max-age=300"
	default:
		return "public, immutable, no-transform, max-age=31536000"
	}
}
