package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planly/backend/pkg/httpcontext"
	activityUC "github.com/planly/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Recent change history
// @Tags activity
// @Router /api/v1/activity [get]
func (h *ActivityHandler) GetRecent(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	taskID := string(args.Peek("task_id"))
	limit, _ := strconv.Atoi(string(args.Peek("limit")))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.uc.Recent(stdCtx, taskID, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entries)
}
