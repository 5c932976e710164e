package transport

type ListRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ListUpdateRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type LabelRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type LabelUpdateRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

type TaskCreateRequest struct {
	Name              string   `json:"name"`
	Description       *string  `json:"description"`
	ListID            string   `json:"list_id"`
	Date              *string  `json:"date"`
	Deadline          *string  `json:"deadline"`
	Priority          string   `json:"priority"`
	Estimate          string   `json:"estimate"`
	Recurrence        string   `json:"recurrence"`
	RecurrencePattern *string  `json:"recurrence_pattern"`
	Labels            []string `json:"labels"`
}

type SubtaskCreateRequest struct {
	Name string `json:"name"`
}

type SubtaskCompletionRequest struct {
	Completed bool `json:"completed"`
}

type ReminderRequest struct {
	RemindAt string `json:"remind_at"`
}
