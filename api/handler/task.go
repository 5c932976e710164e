package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/planly/backend/api/transport"
	"github.com/planly/backend/domain"
	"github.com/planly/backend/pkg/httpcontext"
	taskUC "github.com/planly/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	date, ok := h.parseTimePtr(ctx, req.Date, "date")
	if !ok {
		return
	}
	deadline, ok := h.parseTimePtr(ctx, req.Deadline, "deadline")
	if !ok {
		return
	}

	in := taskUC.CreateTaskInput{
		Name:              req.Name,
		Description:       req.Description,
		ListID:            req.ListID,
		Date:              date,
		Deadline:          deadline,
		Priority:          domain.Priority(req.Priority),
		Estimate:          req.Estimate,
		Recurrence:        domain.Recurrence(req.Recurrence),
		RecurrencePattern: req.RecurrencePattern,
		Labels:            req.Labels,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, in)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewTaskResponse(*created))
}

// @Summary Get task details
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	details, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskDetailResponse(*details))
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	in, ok := h.parseTaskUpdate(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, id, in)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskResponse(*updated))
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Create subtask
// @Tags tasks
// @Router /api/v1/tasks/{id}/subtasks [post]
func (h *TaskHandler) CreateSubtask(ctx *fasthttp.RequestCtx) {
	parentID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.SubtaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateSubtask(stdCtx, parentID, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewTaskResponse(*created))
}

// @Summary Toggle subtask completion
// @Tags tasks
// @Router /api/v1/subtasks/{id} [patch]
func (h *TaskHandler) SetSubtaskCompletion(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.SubtaskCompletionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.SetSubtaskCompletion(stdCtx, id, req.Completed)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskResponse(*updated))
}

// @Summary Attach label to task
// @Tags tasks
// @Router /api/v1/tasks/{id}/labels/{labelId} [put]
func (h *TaskHandler) AttachLabel(ctx *fasthttp.RequestCtx) {
	taskID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}
	labelID, ok := h.pathValue(ctx, "labelId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.AttachLabel(stdCtx, taskID, labelID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Detach label from task
// @Tags tasks
// @Router /api/v1/tasks/{id}/labels/{labelId} [delete]
func (h *TaskHandler) DetachLabel(ctx *fasthttp.RequestCtx) {
	taskID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}
	labelID, ok := h.pathValue(ctx, "labelId")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DetachLabel(stdCtx, taskID, labelID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Add reminder
// @Tags tasks
// @Router /api/v1/tasks/{id}/reminders [post]
func (h *TaskHandler) AddReminder(ctx *fasthttp.RequestCtx) {
	taskID, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	var req transport.ReminderRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return
	}
	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		h.respondBadRequest(ctx, "remind_at must be RFC3339")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reminder, err := h.uc.AddReminder(stdCtx, taskID, remindAt)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, reminder)
}

// @Summary Remove reminder
// @Tags tasks
// @Router /api/v1/reminders/{id} [delete]
func (h *TaskHandler) RemoveReminder(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathValue(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RemoveReminder(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// parseTaskUpdate decodes a partial update. JSON key presence decides
// which fields are touched, so the body is read as a raw field map
// before typed decoding.
func (h *TaskHandler) parseTaskUpdate(ctx *fasthttp.RequestCtx) (taskUC.UpdateTaskInput, bool) {
	var in taskUC.UpdateTaskInput

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(ctx.PostBody(), &fields); err != nil {
		h.respondBadRequest(ctx, "invalid payload")
		return in, false
	}

	for key, raw := range fields {
		var err error
		switch key {
		case "name":
			var v string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Name = taskUC.Change(v)
			}
		case "description":
			var v *string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Description = taskUC.Change(v)
			}
		case "list_id":
			var v string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.ListID = taskUC.Change(v)
			}
		case "date":
			var v *time.Time
			if v, err = decodeTimePtr(raw); err == nil {
				in.Date = taskUC.Change(v)
			}
		case "deadline":
			var v *time.Time
			if v, err = decodeTimePtr(raw); err == nil {
				in.Deadline = taskUC.Change(v)
			}
		case "priority":
			var v string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Priority = taskUC.Change(domain.Priority(v))
			}
		case "estimate":
			var v *string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Estimate = taskUC.Change(v)
			}
		case "actual_time":
			var v *string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.ActualTime = taskUC.Change(v)
			}
		case "recurrence":
			var v string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Recurrence = taskUC.Change(domain.Recurrence(v))
			}
		case "recurrence_pattern":
			var v *string
			if err = json.Unmarshal(raw, &v); err == nil {
				in.RecurrencePattern = taskUC.Change(v)
			}
		case "position":
			var v int
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Position = taskUC.Change(v)
			}
		case "completed":
			var v bool
			if err = json.Unmarshal(raw, &v); err == nil {
				in.Completed = taskUC.Change(v)
			}
		default:
			// unknown keys are ignored
		}
		if err != nil {
			h.respondBadRequest(ctx, "invalid value for "+key)
			return in, false
		}
	}
	return in, true
}

func decodeTimePtr(raw json.RawMessage) (*time.Time, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *TaskHandler) parseTimePtr(ctx *fasthttp.RequestCtx, value *string, field string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		h.respondBadRequest(ctx, field+" must be RFC3339")
		return nil, false
	}
	return &t, true
}
