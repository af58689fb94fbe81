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
	visitUC "github.com/eliteprops/backend/usecase/visit"
)

type VisitHandler struct {
	baseHandler
	uc *visitUC.UseCase
}

func NewVisitHandler(uc *visitUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *VisitHandler {
	return &VisitHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Schedule a site visit
// @Tags visits
// @Router /api/v1/site-visits [post]
func (h *VisitHandler) Schedule(ctx *fasthttp.RequestCtx) {
	var req transport.VisitRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	visit := &domain.SiteVisit{
		PlotID:        req.PlotID,
		PropertyID:    req.PropertyID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Schedule(stdCtx, visit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary List site visits
// @Tags visits
// @Router /api/v1/admin/site-visits [get]
func (h *VisitHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.VisitFilter{
		Status: string(ctx.QueryArgs().Peek("status")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	visits, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, visits)
}

// @Summary Update visit status
// @Tags visits
// @Router /api/v1/admin/site-visits/{id}/status [patch]
func (h *VisitHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing visit id")
		return
	}

	var req transport.VisitStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Status == "" {
		h.respondInvalid(ctx, "status is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateStatus(stdCtx, id, req.Status)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}
