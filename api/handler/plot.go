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

type PlotHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewPlotHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlotHandler {
	return &PlotHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List plots
// @Tags plots
// @Router /api/v1/plots [get]
func (h *PlotHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.PlotFilter{
		Status: string(ctx.QueryArgs().Peek("status")),
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	plots, err := h.uc.ListPlots(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, plots)
}

// @Summary Get one plot
// @Tags plots
// @Router /api/v1/plots/{id} [get]
func (h *PlotHandler) Get(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing plot id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	plot, err := h.uc.GetPlot(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, plot)
}

// @Summary Create plot
// @Tags plots
// @Router /api/v1/admin/plots [post]
func (h *PlotHandler) Create(ctx *fasthttp.RequestCtx) {
	plot, ok := h.parsePlot(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreatePlot(stdCtx, plot)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update plot
// @Tags plots
// @Router /api/v1/admin/plots/{id} [put]
func (h *PlotHandler) Update(ctx *fasthttp.RequestCtx) {
	plot, ok := h.parsePlot(ctx)
	if !ok {
		return
	}
	plot.ID = pathID(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdatePlot(stdCtx, plot)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete plot
// @Tags plots
// @Router /api/v1/admin/plots/{id} [delete]
func (h *PlotHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing plot id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeletePlot(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *PlotHandler) parsePlot(ctx *fasthttp.RequestCtx) (*domain.Plot, bool) {
	var req transport.PlotRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}
	return &domain.Plot{
		PlotNumber:  req.PlotNumber,
		Area:        req.Area,
		Size:        req.Size,
		Price:       req.Price,
		Status:      req.Status,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
	}, true
}
