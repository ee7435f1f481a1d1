package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

// PhotoHandler maneja subida, descarga y borrado de fotos.
type PhotoHandler struct {
	uc          *usecase.PhotoUseCase
	maxUploadMB int
}

// NewPhotoHandler construye el handler. maxUploadMB limita el tamaño del
// archivo antes de tocar disco.
func NewPhotoHandler(uc *usecase.PhotoUseCase, maxUploadMB int) *PhotoHandler {
	return &PhotoHandler{uc: uc, maxUploadMB: maxUploadMB}
}

// Upload POST /api/photos — multipart/form-data con campo "file" y metadatos
// opcionales "caption" y "job_id".
func (h *PhotoHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart \"file\" requerido"})
	}
	if fileHeader.Size > int64(h.maxUploadMB)*1024*1024 {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el archivo supera el tamaño máximo permitido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	out, err := h.uc.Upload(SessionFromCtx(c), usecase.UploadPhotoInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Caption:     c.FormValue("caption"),
		JobID:       c.FormValue("job_id"),
		Content:     f,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get GET /api/photos/:id — metadatos de la foto.
func (h *PhotoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Download GET /api/photos/:id/file — contenido binario de la foto.
func (h *PhotoHandler) Download(c *fiber.Ctx) error {
	rc, meta, err := h.uc.OpenFile(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if meta.ContentType != "" {
		c.Set(fiber.HeaderContentType, meta.ContentType)
	}
	// SendStream cierra el reader al terminar de enviar.
	return c.SendStream(rc)
}

// List GET /api/photos
func (h *PhotoHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	out, err := h.uc.List(SessionFromCtx(c), limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/photos/:id
func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(SessionFromCtx(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
