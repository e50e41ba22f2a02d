package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resumes")
	grp.Post("/ats-score", h.ScoreProfile)
	grp.Post("/ats-score/raw", h.ScoreRaw)
}

func (h *ResumeHandler) ScoreProfile(c fiber.Ctx) error {
	var req dto.ResumeProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	report := h.uc.ScoreProfile(req.ToProfile())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewATSScoreResponse(report))
}

// ScoreRaw accepts the resume parser's output as-is, including fenced JSON.
func (h *ResumeHandler) ScoreRaw(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty payload", nil, nil)
	}

	profile, report, err := h.uc.ScoreRaw(body)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.NewATSScoreResponse(report)
	out.Profile = &profile
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
