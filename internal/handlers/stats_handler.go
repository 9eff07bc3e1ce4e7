package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resonate-app/resonate-backend/internal/dto"
	"github.com/resonate-app/resonate-backend/internal/moderation"
)

type StatsHandler struct {
	reports     moderation.ReportStore
	suspensions moderation.SuspensionStore
}

func NewStatsHandler(reports moderation.ReportStore, suspensions moderation.SuspensionStore) *StatsHandler {
	return &StatsHandler{reports: reports, suspensions: suspensions}
}

func (h *StatsHandler) ReportStats(c *fiber.Ctx) error {
	reports, err := h.reports.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(moderation.ComputeReportStats(reports))
}

func (h *StatsHandler) SuspensionStats(c *fiber.Ctx) error {
	suspensions, err := h.suspensions.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch suspensions",
		})
	}

	return c.JSON(moderation.ComputeSuspensionStats(suspensions))
}
