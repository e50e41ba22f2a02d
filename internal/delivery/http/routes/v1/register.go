package v1

import (
	"career-guide/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups the /api/v1 handlers. Nil entries are skipped.
type Handlers struct {
	Match    *handler.MatchHandler
	Jobs     *handler.JobsHandler
	Resume   *handler.ResumeHandler
	SkillGap *handler.SkillGapHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(r)
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r)
	}
	if h.SkillGap != nil {
		h.SkillGap.RegisterRoutes(r)
	}
}
