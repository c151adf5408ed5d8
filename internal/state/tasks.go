package state

import "time"

// Task action types.
const (
	ActionAddTask             ActionType = "ADD_TASK"
	ActionUpdateTask          ActionType = "UPDATE_TASK"
	ActionToggleTask          ActionType = "TOGGLE_TASK"
	ActionDeleteTask          ActionType = "DELETE_TASK"
	ActionClearCompletedTasks ActionType = "CLEAR_COMPLETED_TASKS"
)

// Task is a to-do item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	DueDate   string    `json:"dueDate,omitempty"` // YYYY-MM-DD
	Priority  string    `json:"priority,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TasksState holds the task list in creation order.
type TasksState struct {
	Tasks []Task `json:"tasks"`
}

// Pending returns the tasks that are not completed.
func (s *TasksState) Pending() []Task {
	pending := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

func taskID(t Task) string { return t.ID }

// TasksDomain builds the tasks domain.
func TasksDomain(deps Deps) Domain[TasksState] {
	return Domain[TasksState]{
		Key:     KeyTasks,
		Initial: func() TasksState { return TasksState{Tasks: []Task{}} },
		Reducer: func(s *TasksState, a Action) (*TasksState, error) {
			return reduceTasks(deps, s, a)
		},
		Repair: func(s TasksState) TasksState {
			tasks := make([]Task, 0, len(s.Tasks))
			for _, t := range s.Tasks {
				if t.ID != "" {
					tasks = append(tasks, t)
				}
			}
			s.Tasks = tasks
			return s
		},
	}
}

func reduceTasks(deps Deps, s *TasksState, a Action) (*TasksState, error) {
	switch a.Type {
	case ActionAddTask:
		task, err := payloadAs[Task](a)
		if err != nil {
			return nil, err
		}
		if task.ID == "" {
			return nil, invalid(a, "task id is required")
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = deps.now()
		}
		tasks, added := appendNew(s.Tasks, task, taskID)
		if !added {
			return s, nil
		}
		return &TasksState{Tasks: tasks}, nil

	case ActionUpdateTask:
		task, err := payloadAs[Task](a)
		if err != nil {
			return nil, err
		}
		if task.ID == "" {
			return nil, invalid(a, "task id is required")
		}
		return &TasksState{Tasks: upsert(s.Tasks, task, taskID)}, nil

	case ActionToggleTask:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		i := indexOf(s.Tasks, id, taskID)
		if i < 0 {
			return s, nil
		}
		tasks := append([]Task{}, s.Tasks...)
		tasks[i].Completed = !tasks[i].Completed
		return &TasksState{Tasks: tasks}, nil

	case ActionDeleteTask:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		tasks, removed := removeWhere(s.Tasks, func(t Task) bool { return t.ID == id })
		if !removed {
			return s, nil
		}
		return &TasksState{Tasks: tasks}, nil

	case ActionClearCompletedTasks:
		tasks, removed := removeWhere(s.Tasks, func(t Task) bool { return t.Completed })
		if !removed {
			return s, nil
		}
		return &TasksState{Tasks: tasks}, nil
	}

	return s, nil
}
