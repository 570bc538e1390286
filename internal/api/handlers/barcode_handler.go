package handlers

import (
	"Pantry-Backend/domain"
	"Pantry-Backend/internal/api/presenters"
	"Pantry-Backend/pkg/barcode"

	"github.com/gofiber/fiber/v2"
)

type (
	BarcodeHandler interface {
		LookupBarcode(c *fiber.Ctx) error
	}

	barcodeHandler struct {
		barcodeService barcode.BarcodeService
	}
)

func NewBarcodeHandler(barcodeService barcode.BarcodeService) BarcodeHandler {
	return &barcodeHandler{barcodeService: barcodeService}
}

func (h *barcodeHandler) LookupBarcode(c *fiber.Ctx) error {
	product, err := h.barcodeService.Lookup(c.Context(), c.Params("code"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLookupBarcode, err)
	}

	return presenters.SuccessResponse(c, product, fiber.StatusOK, domain.MessageSuccessLookupBarcode)
}
