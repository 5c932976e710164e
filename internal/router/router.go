package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/planly/backend/api/handler"
)

type Handlers struct {
	Catalog  *apiHandler.CatalogHandler
	Task     *apiHandler.TaskHandler
	View     *apiHandler.ViewHandler
	Activity *apiHandler.ActivityHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Lists and labels
	r.GET("/api/v1/lists", handlers.Catalog.GetLists)
	r.POST("/api/v1/lists", handlers.Catalog.CreateList)
	r.PUT("/api/v1/lists/{id}", handlers.Catalog.UpdateList)
	r.DELETE("/api/v1/lists/{id}", handlers.Catalog.DeleteList)

	r.GET("/api/v1/labels", handlers.Catalog.GetLabels)
	r.POST("/api/v1/labels", handlers.Catalog.CreateLabel)
	r.PUT("/api/v1/labels/{id}", handlers.Catalog.UpdateLabel)
	r.DELETE("/api/v1/labels/{id}", handlers.Catalog.DeleteLabel)

	// Task views come before task mutations so the static segments win
	// over the {id} wildcard.
	r.GET("/api/v1/tasks", handlers.View.GetTasks)
	r.GET("/api/v1/tasks/overdue/count", handlers.View.GetOverdueCount)
	r.GET("/api/v1/search", handlers.View.Search)

	// Task mutations
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.PATCH("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)

	// Subtasks
	r.POST("/api/v1/tasks/{id}/subtasks", handlers.Task.CreateSubtask)
	r.PATCH("/api/v1/subtasks/{id}", handlers.Task.SetSubtaskCompletion)

	// Label links
	r.PUT("/api/v1/tasks/{id}/labels/{labelId}", handlers.Task.AttachLabel)
	r.DELETE("/api/v1/tasks/{id}/labels/{labelId}", handlers.Task.DetachLabel)

	// Reminders
	r.POST("/api/v1/tasks/{id}/reminders", handlers.Task.AddReminder)
	r.DELETE("/api/v1/reminders/{id}", handlers.Task.RemoveReminder)

	// Change history
	r.GET("/api/v1/activity", handlers.Activity.GetRecent)

	return r
}
