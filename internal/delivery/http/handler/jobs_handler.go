package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobsHandler(uc usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/search", h.Search)
	grp.Get("/fallback", h.Fallback)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Search(c.Context(), usecase.JobSearchParams{
		Query:          c.Query("q"),
		Location:       c.Query("location"),
		EmploymentType: c.Query("type"),
		Skills:         parseSkillsQuery(c.Query("skills")),
		Limit:          limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobSearchResponse{
		Jobs:         dto.NewJobPostingResponses(res.Jobs),
		LiveCount:    res.LiveCount,
		FallbackUsed: res.FallbackUsed,
		Cached:       res.Cached,
	})
}

func (h *JobsHandler) Fallback(c fiber.Ctx) error {
	count, err := parseQueryIntStrict(c, "count", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	postings, err := h.uc.Fallback(usecase.FallbackParams{
		Count:          count,
		Location:       c.Query("location"),
		EmploymentType: c.Query("type"),
		Skills:         parseSkillsQuery(c.Query("skills")),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobPostingResponses(postings))
}
