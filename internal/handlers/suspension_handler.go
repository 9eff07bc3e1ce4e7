package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/dto"
	"github.com/resonate-app/resonate-backend/internal/middleware"
	"github.com/resonate-app/resonate-backend/internal/moderation"
	"github.com/resonate-app/resonate-backend/internal/models"
)

type SuspensionHandler struct {
	suspensions *moderation.SuspensionService
}

func NewSuspensionHandler(suspensions *moderation.SuspensionService) *SuspensionHandler {
	return &SuspensionHandler{suspensions: suspensions}
}

func (h *SuspensionHandler) Create(c *fiber.Ctx) error {
	moderatorID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateSuspensionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	susp, err := h.suspensions.Create(moderation.CreateSuspensionInput{
		UserID:      req.UserID,
		Type:        models.SuspensionType(req.Type),
		Reason:      req.Reason,
		Duration:    time.Duration(req.DurationHours) * time.Hour,
		Appealable:  req.Appealable,
		ModeratorID: &moderatorID,
	})
	if err != nil {
		return suspensionError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(susp)
}

func (h *SuspensionHandler) Review(c *fiber.Ctx) error {
	suspensionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid suspension ID",
		})
	}

	var req dto.ReviewSuspensionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	susp, err := h.suspensions.Review(
		suspensionID,
		models.SuspensionReviewAction(req.Action),
		time.Duration(req.DurationHours)*time.Hour,
	)
	if err != nil {
		return suspensionError(c, err)
	}

	return c.JSON(susp)
}

// CreateAutomatic escalates a user by violation count. Exposed for the
// automated trigger pipeline; moderator-gated like the manual path.
func (h *SuspensionHandler) CreateAutomatic(c *fiber.Ctx) error {
	var req dto.AutomaticSuspensionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	susp, err := h.suspensions.CreateAutomatic(req.UserID, req.ViolationCount, req.Reason)
	if err != nil {
		return suspensionError(c, err)
	}
	if susp == nil {
		return c.JSON(fiber.Map{"message": "Warning issued, no suspension created"})
	}

	return c.Status(fiber.StatusCreated).JSON(susp)
}

func (h *SuspensionHandler) Status(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	status, err := h.suspensions.Status(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch suspension status",
		})
	}

	return c.JSON(status)
}

// MyStatus lets an authenticated user check their own suspension state.
func (h *SuspensionHandler) MyStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	status, err := h.suspensions.Status(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch suspension status",
		})
	}

	return c.JSON(status)
}

func (h *SuspensionHandler) ListForUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	suspensions, err := h.suspensions.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch suspensions",
		})
	}

	return c.JSON(fiber.Map{"suspensions": suspensions})
}

func suspensionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, moderation.ErrSuspensionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: moderation.ErrSuspensionNotFound.Error(),
		})
	case errors.Is(err, moderation.ErrDurationRequired),
		errors.Is(err, moderation.ErrDurationForbidden),
		errors.Is(err, moderation.ErrInvalidType),
		errors.Is(err, moderation.ErrInvalidReviewAction):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, moderation.ErrSuspensionInactive),
		errors.Is(err, moderation.ErrCannotModifyPermanent):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Suspension operation failed",
		})
	}
}
