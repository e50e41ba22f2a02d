package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/skill-gaps")
	grp.Post("/prioritise", h.Prioritise)
	grp.Post("/analysis/raw", h.AnalyzeRaw)
}

func (h *SkillGapHandler) Prioritise(c fiber.Ctx) error {
	var req dto.PrioritiseGapsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	inputs := make([]usecase.GapInput, 0, len(req.Gaps))
	for _, g := range req.Gaps {
		inputs = append(inputs, usecase.GapInput{Skill: g.Skill, CurrentLevel: g.CurrentLevel, RequiredLevel: g.RequiredLevel})
	}

	report, err := h.uc.Prioritise(inputs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapReportResponse(report.Gaps, report.Summary))
}

// AnalyzeRaw takes the analysis model output as the body; ?skills= rescores
// the suggested job matches against the user's skills.
func (h *SkillGapHandler) AnalyzeRaw(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Empty payload", nil, nil)
	}

	analysis, err := h.uc.AnalyzeRaw(body, parseSkillsQuery(c.Query("skills")))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillGapAnalysisResponse{
		GapReportResponse: dto.NewGapReportResponse(analysis.Gaps, analysis.Summary),
		JobMatches:        dto.NewJobPostingResponses(analysis.JobMatches),
	})
}
