package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match/score", h.ScoreMatch)
	r.Post("/keywords/extract", h.ExtractKeywords)
}

func (h *MatchHandler) ScoreMatch(c fiber.Ctx) error {
	var req dto.MatchScoreRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	res := h.uc.ScoreMatch(req.RequiredSkills, req.UserSkills)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchScoreResponse{
		MatchScore: res.MatchScore,
		BaseScore:  res.BaseScore,
		Matched:    res.Matched,
		Missing:    res.Missing,
		Sparse:     res.Sparse,
	})
}

func (h *MatchHandler) ExtractKeywords(c fiber.Ctx) error {
	var req dto.KeywordExtractRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	keywords := h.uc.ExtractKeywords(req.Description, req.UserSkills)
	if keywords == nil {
		keywords = []string{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.KeywordExtractResponse{Keywords: keywords})
}
