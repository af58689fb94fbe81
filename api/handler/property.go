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
	catalogUC "github.com/eliteprops/backend/usecase/catalog"
)

type PropertyHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewPropertyHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List properties
// @Tags properties
// @Router /api/v1/properties [get]
func (h *PropertyHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.PropertyFilter{
		Type:   string(ctx.QueryArgs().Peek("type")),
		Status: string(ctx.QueryArgs().Peek("status")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	properties, err := h.uc.ListProperties(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, properties)
}

// @Summary Get one property
// @Tags properties
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) Get(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing property id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	property, err := h.uc.GetProperty(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, property)
}

// @Summary Create property
// @Tags properties
// @Router /api/v1/admin/properties [post]
func (h *PropertyHandler) Create(ctx *fasthttp.RequestCtx) {
	property, ok := h.parseProperty(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateProperty(stdCtx, property)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update property
// @Tags properties
// @Router /api/v1/admin/properties/{id} [put]
func (h *PropertyHandler) Update(ctx *fasthttp.RequestCtx) {
	property, ok := h.parseProperty(ctx)
	if !ok {
		return
	}
	property.ID = pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateProperty(stdCtx, property)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete property
// @Tags properties
// @Router /api/v1/admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing property id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteProperty(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *PropertyHandler) parseProperty(ctx *fasthttp.RequestCtx) (*domain.Property, bool) {
	var req transport.PropertyRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &domain.Property{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Location:       req.Location,
		Area:           req.Area,
		Type:           req.Type,
		Status:         req.Status,
		Images:         req.Images,
		VirtualTourURL: req.VirtualTourURL,
		Bedrooms:       req.Bedrooms,
		Bathrooms:      req.Bathrooms,
		Sqft:           req.Sqft,
	}, true
}
