package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/resonate-app/resonate-backend/internal/dto"
	"github.com/resonate-app/resonate-backend/internal/models"
	"gorm.io/gorm"
)

// ModeratorRequired gates the moderation panel. A caller passes if any of:
// 1. the X-Moderator-Token header matches the configured token
// 2. their email or user ID is in the configured moderator lists
// 3. their DB user record has role moderator or admin
func ModeratorRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	moderatorEmails := parseCSV(cfg.ModeratorEmails)
	moderatorUserIDs := parseCSV(cfg.ModeratorUserIDs)

	return func(c *fiber.Ctx) error {
		if cfg.ModeratorToken != "" {
			if c.Get("X-Moderator-Token") == cfg.ModeratorToken {
				return c.Next()
			}
		}

		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid claims",
			})
		}

		email, _ := claims["email"].(string)
		sub, _ := claims["sub"].(string)

		if contains(moderatorEmails, email) || contains(moderatorUserIDs, sub) {
			return c.Next()
		}

		if sub != "" {
			userID, err := uuid.Parse(sub)
			if err == nil {
				var user models.User
				if err := db.First(&user, "id = ?", userID).Error; err == nil {
					if user.Role == "moderator" || user.Role == "admin" {
						return c.Next()
					}
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Moderator access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
