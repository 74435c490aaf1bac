package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("file is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("could not read uploaded file"))
	}
	defer src.Close()

	userID := c.Locals("userID").(string)

	url, err := h.uploadService.UploadDocument(
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
		fileHeader.Size,
	)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"url": url}, "Document uploaded successfully"))
}
