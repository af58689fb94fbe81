package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/api/transport"
	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/pkg/httpcontext"
	"github.com/eliteprops/backend/repository"
	contentUC "github.com/eliteprops/backend/usecase/content"
)

type ContentHandler struct {
	baseHandler
	uc *contentUC.UseCase
}

func NewContentHandler(uc *contentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Active website content
// @Tags content
// @Router /api/v1/content [get]
func (h *ContentHandler) ListPublic(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contents, err := h.uc.ListPublic(stdCtx, string(ctx.QueryArgs().Peek("type")))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, contents)
}

// @Summary All website content
// @Tags content
// @Router /api/v1/admin/content [get]
func (h *ContentHandler) ListAll(ctx *fasthttp.RequestCtx) {
	filter := repository.ContentFilter{
		Type:   string(ctx.QueryArgs().Peek("type")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contents, err := h.uc.ListAll(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, contents)
}

// @Summary Create content
// @Tags content
// @Router /api/v1/admin/content [post]
func (h *ContentHandler) Create(ctx *fasthttp.RequestCtx) {
	content, ok := h.parseContent(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, content)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update content
// @Tags content
// @Router /api/v1/admin/content/{id} [put]
func (h *ContentHandler) Update(ctx *fasthttp.RequestCtx) {
	content, ok := h.parseContent(ctx)
	if !ok {
		return
	}
	content.ID = pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, content)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle content visibility
// @Tags content
// @Router /api/v1/admin/content/{id}/active [put]
func (h *ContentHandler) SetActive(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing content id")
		return
	}

	var req transport.ContentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.IsActive == nil {
		h.respondInvalid(ctx, "is_active is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.SetActive(stdCtx, id, *req.IsActive)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete content
// @Tags content
// @Router /api/v1/admin/content/{id} [delete]
func (h *ContentHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing content id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *ContentHandler) parseContent(ctx *fasthttp.RequestCtx) (*domain.WebsiteContent, bool) {
	var req transport.ContentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	content := &domain.WebsiteContent{
		Type:     req.Type,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if req.IsActive != nil {
		content.IsActive = *req.IsActive
	} else {
		content.IsActive = true
	}
	return content, true
}
