package handlers_fiber

import (
	"errors"
	"mime/multipart"
	"net/http"

	"team-registration/internal/api"
	"team-registration/internal/documents"
	"team-registration/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostApplicationDocuments stores the supporting files attached to an application.
func (h *Handler) PostApplicationDocuments(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, err.Error()))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "multipart form is required"))
	}

	uploads, closeUploads, err := openUploads(form)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, err.Error()))
	}

	stored, err := h.uc.StoreDocuments(c.Context(), id, uploads)
	closeUploads()
	if err != nil {
		h.log.Errorw("failed to store documents", "application_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(api.UploadResponse{Documents: mapper.ToAPIStoredList(stored)})
}

// openUploads opens every file of the form. The returned closer releases
// all of them; on error the files opened so far are already closed.
func openUploads(form *multipart.Form) ([]documents.Upload, func(), error) {
	files := make([]multipart.File, 0)
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	uploads := make([]documents.Upload, 0)
	for _, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				closeAll()
				return nil, nil, errors.New("unreadable file: " + fh.Filename)
			}
			files = append(files, f)
			uploads = append(uploads, documents.Upload{FileName: fh.Filename, Content: f})
		}
	}

	return uploads, closeAll, nil
}

// GetDocument streams a static registration document by logical name.
func (h *Handler) GetDocument(c *fiber.Ctx) error {
	rc, fileName, err := h.uc.OpenDocument(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.SendStream(rc)
}
