package http

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resumely/internal/adapter/repository"
	"resumely/internal/domain"
	"resumely/internal/model"
	"resumely/internal/render"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PDFExporter turns a resume document into a printable PDF.
type PDFExporter interface {
	ExportPDF(ctx context.Context, doc *model.Document) ([]byte, error)
}

type ResumeHandler struct {
	resumes  *repository.ResumesRepo
	audit    *repository.AuditRepo
	exporter PDFExporter
	log      *zap.Logger
}

func NewResumeHandler(resumes *repository.ResumesRepo, audit *repository.AuditRepo, exporter PDFExporter, log *zap.Logger) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, audit: audit, exporter: exporter, log: log}
}

type resumeReq struct {
	Name     string          `json:"name"`
	Data     json.RawMessage `json:"data"`
	Template string          `json:"template"`
}

func (r resumeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, 100)),
		validation.Field(&r.Data, validation.Required.Error("resume data is required")),
		validation.Field(&r.Template, validation.In(templateIDs()...)),
	)
}

func templateIDs() []interface{} {
	infos := render.Templates()
	ids := make([]interface{}, len(infos))
	for i, t := range infos {
		ids[i] = t.ID
	}
	return ids
}

// decodeDocument schema-checks the submitted body and normalizes it against
// the defaults so stored documents are always complete.
func decodeDocument(raw json.RawMessage) (*model.Document, error) {
	if err := model.ValidateBytes(raw); err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func resumeID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	summaries, err := h.resumes.ListByUser(c.Context(), currentUserID(c))
	if err != nil {
		h.log.Error("list resumes failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch resumes", "FETCH_ERROR")
	}
	return ok(c, fiber.StatusOK, fiber.Map{
		"data": fiber.Map{"resumes": summaries, "count": len(summaries)},
	})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	res, err := h.resumes.GetByID(c.Context(), id, currentUserID(c))
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("get resume failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to fetch resume", "FETCH_ERROR")
	}
	return ok(c, fiber.StatusOK, fiber.Map{
		"data": fiber.Map{"resume": fiber.Map{
			"id":        res.ID,
			"name":      res.Name,
			"data":      json.RawMessage(res.Data),
			"template":  res.Template,
			"isDefault": res.IsDefault,
			"createdAt": res.CreatedAt,
			"updatedAt": res.UpdatedAt,
		}},
	})
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var req resumeReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid payload", "VALIDATION_ERROR")
	}
	if err := req.Validate(); err != nil {
		return failValidation(c, err)
	}
	doc, err := decodeDocument(req.Data)
	if err != nil {
		return failValidation(c, err)
	}

	if req.Template != "" {
		doc.Settings.Template = req.Template
	}
	data, err := json.Marshal(doc)
	if err != nil {
		h.log.Error("resume encode failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create resume", "CREATE_ERROR")
	}

	name := req.Name
	if name == "" {
		name = "Untitled Resume"
	}
	now := time.Now().UTC()
	uid := currentUserID(c)
	res := &domain.Resume{
		ID:        uuid.New(),
		UserID:    uid,
		Name:      name,
		Data:      data,
		Template:  render.Lookup(doc.Settings.Template).ID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.resumes.Create(c.Context(), res); err != nil {
		h.log.Error("create resume failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to create resume", "CREATE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_CREATE",
		Details: res.ID.String(), IPAddress: c.IP(), CreatedAt: now,
	})

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Resume created successfully",
		"data": fiber.Map{"resume": fiber.Map{
			"id":       res.ID,
			"name":     res.Name,
			"template": res.Template,
		}},
	})
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	var req resumeReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid payload", "VALIDATION_ERROR")
	}
	if err := req.Validate(); err != nil {
		return failValidation(c, err)
	}

	uid := currentUserID(c)
	existing, err := h.resumes.GetByID(c.Context(), id, uid)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("update lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to update resume", "UPDATE_ERROR")
	}

	doc, err := decodeDocument(req.Data)
	if err != nil {
		return failValidation(c, err)
	}
	if req.Template != "" {
		doc.Settings.Template = req.Template
	}
	data, err := json.Marshal(doc)
	if err != nil {
		h.log.Error("resume encode failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to update resume", "UPDATE_ERROR")
	}

	existing.Data = data
	existing.Template = render.Lookup(doc.Settings.Template).ID()
	if req.Name != "" {
		existing.Name = req.Name
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := h.resumes.Update(c.Context(), existing); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("update resume failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to update resume", "UPDATE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_UPDATE",
		Details: existing.ID.String(), IPAddress: c.IP(), CreatedAt: existing.UpdatedAt,
	})

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Resume updated successfully",
		"data": fiber.Map{"resume": fiber.Map{
			"id":        existing.ID,
			"name":      existing.Name,
			"template":  existing.Template,
			"updatedAt": existing.UpdatedAt,
		}},
	})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	uid := currentUserID(c)
	if err := h.resumes.Delete(c.Context(), id, uid); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("delete resume failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to delete resume", "DELETE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_DELETE",
		Details: id.String(), IPAddress: c.IP(), CreatedAt: time.Now().UTC(),
	})

	return ok(c, fiber.StatusOK, fiber.Map{"message": "Resume deleted successfully"})
}

func (h *ResumeHandler) SetDefault(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	uid := currentUserID(c)
	if err := h.resumes.SetDefault(c.Context(), id, uid); err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("set default failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to set default resume", "UPDATE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_SET_DEFAULT",
		Details: id.String(), IPAddress: c.IP(), CreatedAt: time.Now().UTC(),
	})

	return ok(c, fiber.StatusOK, fiber.Map{"message": "Default resume updated"})
}

func (h *ResumeHandler) Duplicate(c *fiber.Ctx) error {
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	uid := currentUserID(c)
	original, err := h.resumes.GetByID(c.Context(), id, uid)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("duplicate lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to duplicate resume", "DUPLICATE_ERROR")
	}

	now := time.Now().UTC()
	dup := &domain.Resume{
		ID:        uuid.New(),
		UserID:    uid,
		Name:      fmt.Sprintf("%s (Copy)", original.Name),
		Data:      original.Data,
		Template:  original.Template,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.resumes.Create(c.Context(), dup); err != nil {
		h.log.Error("duplicate insert failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to duplicate resume", "DUPLICATE_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_DUPLICATE",
		Details: dup.ID.String(), IPAddress: c.IP(), CreatedAt: now,
	})

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Resume duplicated successfully",
		"data": fiber.Map{"resume": fiber.Map{
			"id":       dup.ID,
			"name":     dup.Name,
			"template": dup.Template,
		}},
	})
}

// Export renders the stored document with its own template and streams the
// PDF back. Rendering happens server-side so exports match print output.
func (h *ResumeHandler) Export(c *fiber.Ctx) error {
	if h.exporter == nil {
		return fail(c, fiber.StatusServiceUnavailable, "PDF export is not available", "EXPORT_UNAVAILABLE")
	}
	id, err := resumeID(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid resume ID", "VALIDATION_ERROR")
	}
	uid := currentUserID(c)
	res, err := h.resumes.GetByID(c.Context(), id, uid)
	if err != nil {
		if err == repository.ErrNotFound {
			return fail(c, fiber.StatusNotFound, "Resume not found", "NOT_FOUND")
		}
		h.log.Error("export lookup failed", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to export resume", "EXPORT_ERROR")
	}

	var doc model.Document
	if err := json.Unmarshal(res.Data, &doc); err != nil {
		h.log.Error("stored resume decode failed", zap.String("id", res.ID.String()), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to export resume", "EXPORT_ERROR")
	}

	pdf, err := h.exporter.ExportPDF(c.Context(), &doc)
	if err != nil {
		h.log.Error("pdf render failed", zap.String("id", res.ID.String()), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Failed to export resume", "EXPORT_ERROR")
	}

	h.audit.Record(c.Context(), domain.AuditEntry{
		UserID: &uid, Action: "RESUME_EXPORT",
		Details: res.ID.String(), IPAddress: c.IP(), CreatedAt: time.Now().UTC(),
	})

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Name+".pdf"))
	return c.Send(pdf)
}
