package state

import "time"

// Study plan action types.
const (
	ActionSetPlanLoading ActionType = "SET_PLAN_LOADING"
	ActionSetPlan        ActionType = "SET_PLAN"
	ActionSetPlanError   ActionType = "SET_PLAN_ERROR"
	ActionTogglePlanItem ActionType = "TOGGLE_PLAN_ITEM"
	ActionClearPlan      ActionType = "CLEAR_PLAN"
)

// PlanItem is one study block of a plan.
type PlanItem struct {
	ID              string `json:"id"`
	Day             string `json:"day"` // YYYY-MM-DD
	Topic           string `json:"topic"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes"`
	Completed       bool   `json:"completed"`
}

// StudyPlan is a generated schedule towards a goal.
type StudyPlan struct {
	ID        string     `json:"id"`
	Goal      string     `json:"goal"`
	Items     []PlanItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Completion returns the fraction of completed items in [0, 1].
func (p *StudyPlan) Completion() float64 {
	if p == nil || len(p.Items) == 0 {
		return 0
	}
	done := 0
	for _, item := range p.Items {
		if item.Completed {
			done++
		}
	}
	return float64(done) / float64(len(p.Items))
}

// StudyPlanState holds the current plan, if any.
type StudyPlanState struct {
	Plan *StudyPlan `json:"plan"`

	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error"`
}

// StudyPlanDomain builds the study-plan domain.
func StudyPlanDomain(deps Deps) Domain[StudyPlanState] {
	return Domain[StudyPlanState]{
		Key:     KeyStudyPlan,
		Initial: func() StudyPlanState { return StudyPlanState{} },
		Reducer: func(s *StudyPlanState, a Action) (*StudyPlanState, error) {
			return reduceStudyPlan(deps, s, a)
		},
		Volatile: func(s StudyPlanState) StudyPlanState {
			s.IsLoading = false
			s.Error = ""
			return s
		},
		Repair: func(s StudyPlanState) StudyPlanState {
			if s.Plan != nil {
				plan := *s.Plan
				plan.Items = nonNil(plan.Items)
				s.Plan = &plan
			}
			return s
		},
	}
}

func reduceStudyPlan(deps Deps, s *StudyPlanState, a Action) (*StudyPlanState, error) {
	switch a.Type {
	case ActionSetPlanLoading:
		loading, err := payloadAs[bool](a)
		if err != nil {
			return nil, err
		}
		if s.IsLoading == loading {
			return s, nil
		}
		next := *s
		next.IsLoading = loading
		if loading {
			next.Error = ""
		}
		return &next, nil

	case ActionSetPlan:
		plan, err := payloadAs[StudyPlan](a)
		if err != nil {
			return nil, err
		}
		if plan.ID == "" {
			return nil, invalid(a, "plan id is required")
		}
		plan.Items = append([]PlanItem{}, plan.Items...)
		if plan.CreatedAt.IsZero() {
			plan.CreatedAt = deps.now()
		}
		return &StudyPlanState{Plan: &plan}, nil

	case ActionSetPlanError:
		msg, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		next := *s
		next.Error = msg
		next.IsLoading = false
		return &next, nil

	case ActionTogglePlanItem:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		if s.Plan == nil {
			return s, nil
		}
		i := indexOf(s.Plan.Items, id, func(p PlanItem) string { return p.ID })
		if i < 0 {
			return s, nil
		}
		plan := *s.Plan
		plan.Items = append([]PlanItem{}, s.Plan.Items...)
		plan.Items[i].Completed = !plan.Items[i].Completed
		next := *s
		next.Plan = &plan
		return &next, nil

	case ActionClearPlan:
		if s.Plan == nil && !s.IsLoading && s.Error == "" {
			return s, nil
		}
		return &StudyPlanState{}, nil
	}

	return s, nil
}
