package handlers

import (
	"Pantry-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFoodItemNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidUrgency),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrInvalidBarcode),
		errors.Is(err, domain.ErrInvalidDaysBefore),
		errors.Is(err, domain.ErrReminderEmailRequired),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	}

	log.Errorf("unhandled error: %v", err)
	return fiber.StatusInternalServerError
}

// userIDFrom returns the ID the auth middleware stored on the request.
func userIDFrom(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
