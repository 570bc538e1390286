package handlers

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/internal/api/presenters"
	"Pantry-Backend/pkg/expiry"
	"Pantry-Backend/pkg/notification"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
		SendTestReminder(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
		location            *time.Location
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate, location *time.Location) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
		location:            location,
	}
}

func (h *notificationHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.notificationService.GetSettings(c.Context(), userIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetNotificationSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessGetNotificationSettings)
}

func (h *notificationHandler) UpdateSettings(c *fiber.Ctx) error {
	req := new(domain.UpdateNotificationSettingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotificationSettings, err)
	}

	settings, err := h.notificationService.UpdateSettings(c.Context(), userIDFrom(c), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateNotificationSettings, err)
	}

	return presenters.SuccessResponse(c, settings, fiber.StatusOK, domain.MessageSuccessUpdateNotificationSettings)
}

func (h *notificationHandler) SendTestReminder(c *fiber.Ctx) error {
	today := expiry.Today(time.Now(), h.location)

	if err := h.notificationService.SendTestReminder(c.Context(), userIDFrom(c), today); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSendTestReminder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendTestReminder)
}
