package handler

import (
	"context"
	"time"

	"career-guide/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 500 * time.Millisecond

// Pinger is satisfied by the cache client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	cache   Pinger
}

// NewHealthHandler reports liveness. cache may be nil when caching is
// disabled.
func NewHealthHandler(appName string, cache Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, cache: cache}
}

type healthResponse struct {
	App   string `json:"app"`
	Cache string `json:"cache"`
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	out := healthResponse{App: h.appName, Cache: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), healthPingTimeout)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			out.Cache = "bypassed"
		} else {
			out.Cache = "up"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
