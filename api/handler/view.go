package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planly/backend/api/transport"
	"github.com/planly/backend/pkg/httpcontext"
	searchUC "github.com/planly/backend/usecase/search"
	viewUC "github.com/planly/backend/usecase/view"
)

type ViewHandler struct {
	baseHandler
	views  *viewUC.UseCase
	search *searchUC.UseCase
}

func NewViewHandler(views *viewUC.UseCase, search *searchUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		baseHandler: newBaseHandler(adapter, logger),
		views:       views,
		search:      search,
	}
}

// @Summary List tasks by view, list or label
// @Tags views
// @Router /api/v1/tasks [get]
func (h *ViewHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()

	q := viewUC.Query{
		ListID:        string(args.Peek("list_id")),
		LabelID:       string(args.Peek("label_id")),
		ShowCompleted: parseBool(string(args.Peek("show_completed"))),
	}

	if sel := string(args.Peek("view")); sel != "" {
		parsed, err := viewUC.ParseSelector(sel)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		q.Selector = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.views.Tasks(stdCtx, q, time.Now())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskViewList(tasks))
}

// @Summary Count overdue tasks
// @Tags views
// @Router /api/v1/tasks/overdue/count [get]
func (h *ViewHandler) GetOverdueCount(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	count, err := h.views.OverdueCount(stdCtx, time.Now())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"count": count})
}

// @Summary Search tasks
// @Tags search
// @Router /api/v1/search [get]
func (h *ViewHandler) Search(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	results, err := h.search.Search(stdCtx, query)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	out := make([]transport.SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, transport.SearchResultResponse{
			TaskViewResponse: transport.NewTaskViewResponse(r.TaskWithRelations),
			Score:            r.Score,
		})
	}
	h.respondSuccess(ctx, http.StatusOK, out)
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}
