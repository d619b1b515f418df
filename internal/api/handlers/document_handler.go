package handlers

import (
	"errors"
	"io"

	"ai-booking-assistant/internal/dto"
	"ai-booking-assistant/internal/service"
	"ai-booking-assistant/pkg/embedding"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	ingestService *service.IngestService
	logger        *zap.Logger
}

func NewDocumentHandler(ingestService *service.IngestService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		ingestService: ingestService,
		logger:        logger,
	}
}

// Ingest godoc
// @Summary Ingest PDF documents
// @Description Extracts, chunks and embeds the uploaded PDFs, replacing the current index
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF files"
// @Success 200 {object} dto.IngestResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/documents/ingest [post]
func (h *DocumentHandler) Ingest(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "expected multipart form data",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no files provided",
		})
	}

	var documents [][]byte
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Warn("Failed to open uploaded file",
				zap.String("filename", fileHeader.Filename),
				zap.Error(err),
			)
			continue
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.logger.Warn("Failed to read uploaded file",
				zap.String("filename", fileHeader.Filename),
				zap.Error(err),
			)
			continue
		}
		documents = append(documents, data)
	}

	chunks, err := h.ingestService.Ingest(c.Context(), documents)
	if err != nil {
		var confErr *embedding.ConfigurationError
		if errors.As(err, &confErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": confErr.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to ingest documents",
		})
	}

	return c.JSON(dto.IngestResponse{
		Documents: len(documents),
		Chunks:    chunks,
	})
}
