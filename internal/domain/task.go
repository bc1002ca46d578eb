package domain

// Task is a titled work item. Tasks share nothing with products, including
// their identifier namespace.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// TaskInput carries the user-supplied task fields.
type TaskInput struct {
	Title       *string
	Description *string
}

// Values returns the supplied fields keyed by their schema names.
func (in TaskInput) Values() map[string]any {
	values := make(map[string]any, 2)
	if in.Title != nil {
		values["title"] = *in.Title
	}
	if in.Description != nil {
		values["description"] = *in.Description
	}
	return values
}

// Validate checks the input against TaskSchema.
func (in TaskInput) Validate() error {
	return TaskSchema().Validate(in.Values()).Err()
}

// NewTask validates in and builds a task with the given id.
func NewTask(id string, in TaskInput) (*Task, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t := &Task{
		ID:    id,
		Title: *in.Title,
	}
	if in.Description != nil {
		d := *in.Description
		t.Description = &d
	}
	return t, nil
}

// Clone returns a copy of t that shares no pointers with it.
func (t Task) Clone() Task {
	c := t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return c
}

// TaskSchema describes the user-supplied task fields.
func TaskSchema() Schema {
	return Schema{
		Name:        "TaskInput",
		Description: "Model for creating a new task.",
		Fields: []FieldRule{
			{
				Name:        "title",
				Title:       "Task Title",
				Description: "Title of the task",
				Type:        TypeString,
				Required:    true,
				MinLength:   1,
				MaxLength:   100,
				Example:     "Sample Task",
			},
			{
				Name:        "description",
				Title:       "Task Description",
				Description: "Detailed description of the task",
				Type:        TypeString,
				Example:     "Example description",
			},
		},
		Example: map[string]any{
			"title":       "Sample Task",
			"description": "Example description",
		},
	}
}
