package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/dto"
	"github.com/resonate-app/resonate-backend/internal/middleware"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
	"github.com/resonate-app/resonate-backend/internal/services"
)

type ModerationHandler struct {
	intake     *moderation.IntakeService
	escalation *moderation.EscalationEngine
	resolution *moderation.ResolutionEngine
	reports    moderation.ReportStore
	reputation moderation.ReputationService
	blocks     *services.BlockService
}

func NewModerationHandler(
	intake *moderation.IntakeService,
	escalation *moderation.EscalationEngine,
	resolution *moderation.ResolutionEngine,
	reports moderation.ReportStore,
	reputation moderation.ReputationService,
	blocks *services.BlockService,
) *ModerationHandler {
	return &ModerationHandler{
		intake:     intake,
		escalation: escalation,
		resolution: resolution,
		reports:    reports,
		reputation: reputation,
		blocks:     blocks,
	}
}

func (h *ModerationHandler) SubmitReport(c *fiber.Ctx) error {
	reporterID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.intake.SubmitReport(reporterID, moderation.SubmitReportInput{
		ContentID: req.ContentID,
		Category:  models.ReportCategory(req.Category),
		Reason:    req.Reason,
		Evidence:  req.Evidence,
	})
	if err != nil {
		return submitError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ModerationHandler) SubmitCommentReport(c *fiber.Ctx) error {
	reporterID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SubmitCommentReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.intake.SubmitCommentReport(reporterID, moderation.SubmitCommentReportInput{
		ContentID: req.ContentID,
		CommentID: req.CommentID,
		Category:  models.ReportCategory(req.Category),
		Reason:    req.Reason,
		Evidence:  req.Evidence,
	})
	if err != nil {
		return submitError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func submitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, moderation.ErrReporterBanned):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, moderation.ErrInvalidCategory):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit report",
		})
	}
}

func (h *ModerationHandler) ListReports(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit > 100 {
		limit = 100
	}

	reports, err := h.reports.GetWithFilters(moderation.ReportFilters{
		Status:   models.ReportStatus(c.Query("status", "")),
		Category: models.ReportCategory(c.Query("category", "")),
		Priority: models.ReportPriority(c.Query("priority", "")),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"limit":   limit,
		"offset":  offset,
	})
}

// EscalateReport is the manual escalation path, bypassing thresholds.
func (h *ModerationHandler) EscalateReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	report, err := h.escalation.EscalateReport(reportID)
	if err != nil {
		if errors.Is(err, moderation.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: moderation.ErrReportNotFound.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to escalate report",
		})
	}

	return c.JSON(report)
}

func (h *ModerationHandler) ResolveReport(c *fiber.Ctx) error {
	return h.resolve(c, false)
}

func (h *ModerationHandler) ResolveCommentReport(c *fiber.Ctx) error {
	return h.resolve(c, true)
}

func (h *ModerationHandler) resolve(c *fiber.Ctx, comment bool) error {
	moderatorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	input := moderation.ResolutionInput{
		Action:      models.ResolutionAction(req.Action),
		Reason:      req.Reason,
		ModeratorID: moderatorID,
		Notes:       req.Notes,
	}

	var report *models.Report
	if comment {
		report, err = h.resolution.ResolveCommentReport(reportID, input)
	} else {
		report, err = h.resolution.ResolveReport(reportID, input)
	}
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrReportNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: moderation.ErrReportNotFound.Error(),
			})
		case errors.Is(err, moderation.ErrAlreadyResolved):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: moderation.ErrAlreadyResolved.Error(),
			})
		case errors.Is(err, moderation.ErrInvalidAction):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: moderation.ErrInvalidAction.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to resolve report",
			})
		}
	}

	return c.JSON(report)
}

func (h *ModerationHandler) BlockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BlockUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.blocks.BlockUser(blockerID, req.BlockedID); err != nil {
		if errors.Is(err, services.ErrSelfBlock) || errors.Is(err, services.ErrAlreadyBlocked) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to block user",
		})
	}

	return c.JSON(fiber.Map{"message": "User blocked successfully"})
}

func (h *ModerationHandler) UnblockUser(c *fiber.Ctx) error {
	blockerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	blockedID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.blocks.UnblockUser(blockerID, blockedID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unblock user",
		})
	}

	return c.JSON(fiber.Map{"message": "User unblocked successfully"})
}

// ListBlocks returns the IDs a user has blocked, for client-side filtering.
func (h *ModerationHandler) ListBlocks(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	ids, err := h.blocks.GetBlockedIDs(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blocks",
		})
	}

	return c.JSON(fiber.Map{"blocked_ids": ids})
}

// MyReports lists the authenticated user's own report history.
func (h *ModerationHandler) MyReports(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	reports, err := h.reports.GetByReporter(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{"reports": reports})
}

// DeleteReport hard-deletes a report. Moderator-only cleanup path for
// mistaken or abusive filings; resolved reports normally stay for audit.
func (h *ModerationHandler) DeleteReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid report ID",
		})
	}

	if _, err := h.reports.GetByID(reportID); err != nil {
		if errors.Is(err, moderation.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: moderation.ErrReportNotFound.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load report",
		})
	}

	if err := h.reports.Delete(reportID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete report",
		})
	}

	return c.JSON(fiber.Map{"message": "Report deleted"})
}

// SetReputation overrides a user's reputation score directly. Manual
// moderator correction outside the penalty/bonus flow.
func (h *ModerationHandler) SetReputation(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.SetReputationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	score := req.Score
	if err := h.reputation.Update(userID, moderation.ReputationPatch{Score: &score}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update reputation",
		})
	}

	return c.JSON(fiber.Map{
		"user_id": userID,
		"score":   score,
		"level":   models.LevelForScore(score),
	})
}
