package handler

import (
	"strconv"

	"staff-scheduler/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	uc *usecase.DocumentUsecase
}

func NewDocumentHandler(uc *usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload takes multipart form fields owner_id, kind, title and the file part.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(c.FormValue("owner_id"), 10, 64)
	if err != nil || ownerID == 0 {
		return badRequest(c, "owner_id is required")
	}
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := file.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer f.Close()

	doc, err := h.uc.Upload(usecase.Upload{
		OwnerID:    uint(ownerID),
		UploadedBy: currentUserID(c),
		Kind:       c.FormValue("kind"),
		Title:      c.FormValue("title"),
		FileName:   file.Filename,
		MimeType:   file.Header.Get(fiber.HeaderContentType),
		Size:       file.Size,
		Content:    f,
	})
	if err != nil {
		return fail(c, err)
	}
	return created(c, "Document uploaded", doc)
}

// GetAll lists the caller's documents. Admins may pass ?owner_id= or see all.
func (h *DocumentHandler) GetAll(c *fiber.Ctx) error {
	ownerID, _ := strconv.ParseUint(c.Query("owner_id"), 10, 64)
	docs, err := h.uc.List(viewer(c), uint(ownerID), c.Query("kind"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": docs})
}

func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	doc, err := h.uc.Open(viewer(c), id)
	if err != nil {
		return fail(c, err)
	}
	if doc.MimeType != "" {
		c.Set(fiber.HeaderContentType, doc.MimeType)
	}
	return c.Download(doc.StoredPath, doc.FileName)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Document deleted"})
}
