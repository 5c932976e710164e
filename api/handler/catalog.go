package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planly/backend/api/transport"
	"github.com/planly/backend/pkg/httpcontext"
	catalogUC "github.com/planly/backend/usecase/catalog"
)

type CatalogHandler struct {
	baseHandler
	uc *catalogUC.UseCase
}

func NewCatalogHandler(uc *catalogUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List task lists
// @Tags lists
// @Router /api/v1/lists [get]
func (h *CatalogHandler) GetLists(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	lists, err := h.uc.Lists(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, lists)
}

// @Summary Create list
// @Tags lists
// @Router /api/v1/lists [post]
func (h *CatalogHandler) CreateList(ctx *fasthttp.RequestCtx) {
	var req transport.ListRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	list, err := h.uc.CreateList(stdCtx, catalogUC.CreateListInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, list)
}

// @Summary Update list
// @Tags lists
// @Router /api/v1/lists/{id} [put]
func (h *CatalogHandler) UpdateList(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.ListUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	list, err := h.uc.UpdateList(stdCtx, id, catalogUC.UpdateListInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, list)
}

// @Summary Delete list
// @Tags lists
// @Router /api/v1/lists/{id} [delete]
func (h *CatalogHandler) DeleteList(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteList(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List labels
// @Tags labels
// @Router /api/v1/labels [get]
func (h *CatalogHandler) GetLabels(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	labels, err := h.uc.Labels(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, labels)
}

// @Summary Create label
// @Tags labels
// @Router /api/v1/labels [post]
func (h *CatalogHandler) CreateLabel(ctx *fasthttp.RequestCtx) {
	var req transport.LabelRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	label, err := h.uc.CreateLabel(stdCtx, catalogUC.CreateLabelInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, label)
}

// @Summary Update label
// @Tags labels
// @Router /api/v1/labels/{id} [put]
func (h *CatalogHandler) UpdateLabel(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.LabelUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	label, err := h.uc.UpdateLabel(stdCtx, id, catalogUC.UpdateLabelInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, label)
}

// @Summary Delete label
// @Tags labels
// @Router /api/v1/labels/{id} [delete]
func (h *CatalogHandler) DeleteLabel(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteLabel(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
