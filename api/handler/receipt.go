package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/eliteprops/backend/api/transport"
	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/pkg/httpcontext"
	"github.com/eliteprops/backend/repository"
	receiptUC "github.com/eliteprops/backend/usecase/receipt"
)

type ReceiptHandler struct {
	baseHandler
	uc *receiptUC.UseCase
}

func NewReceiptHandler(uc *receiptUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List receipts
// @Tags receipts
// @Router /api/v1/admin/receipts [get]
func (h *ReceiptHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.ReceiptFilter{
		Limit:  parseInt(string(ctx.QueryArgs().Peek("limit")), 50),
		Offset: parseInt(string(ctx.QueryArgs().Peek("offset")), 0),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	receipts, err := h.uc.List(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, receipts)
}

// @Summary Get one receipt
// @Tags receipts
// @Router /api/v1/admin/receipts/{id} [get]
func (h *ReceiptHandler) Get(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing receipt id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	receipt, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, receipt)
}

// @Summary Create receipt
// @Tags receipts
// @Router /api/v1/admin/receipts [post]
func (h *ReceiptHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.ReceiptRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	receipt := &domain.Receipt{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		PropertyID:    req.PropertyID,
		PlotID:        req.PlotID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		ReceiptDate:   req.ReceiptDate,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, receipt)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Receipt document preview
// @Tags receipts
// @Router /api/v1/admin/receipts/{id}/document [get]
func (h *ReceiptHandler) Preview(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing receipt id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	doc, err := h.uc.Document(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, doc)
}

// @Summary Download receipt PDF
// @Tags receipts
// @Router /api/v1/admin/receipts/{id}/pdf [get]
func (h *ReceiptHandler) DownloadPDF(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing receipt id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	filename, data, err := h.uc.ExportPDF(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("application/pdf")
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(data)
}
