package state

import "time"

// Exam action types.
const (
	ActionStartExamGeneration ActionType = "START_EXAM_GENERATION"
	ActionSetExam             ActionType = "SET_EXAM"
	ActionSetExamError        ActionType = "SET_EXAM_ERROR"
	ActionAnswerQuestion      ActionType = "ANSWER_QUESTION"
	ActionSubmitExam          ActionType = "SUBMIT_EXAM"
	ActionCloseResultsModal   ActionType = "CLOSE_RESULTS_MODAL"
	ActionDeleteExam          ActionType = "DELETE_EXAM"
	ActionResetExam           ActionType = "RESET_EXAM"
)

// Question is one multiple-choice question of a generated exam.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Exam is a generated practice exam.
type Exam struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Subject    string     `json:"subject,omitempty"`
	Difficulty string     `json:"difficulty,omitempty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ExamResult is the score of one submitted attempt.
type ExamResult struct {
	ExamID      string    `json:"examId"`
	Correct     int       `json:"correct"`
	Total       int       `json:"total"`
	Percentage  float64   `json:"percentage"`
	CompletedAt time.Time `json:"completedAt"`
}

// Answer selects an option for a question of the active exam.
type Answer struct {
	QuestionID  string `json:"questionId"`
	OptionIndex int    `json:"optionIndex"`
}

// ExamState holds generated exams, the attempt in progress and past results.
type ExamState struct {
	Exams        []Exam         `json:"exams"`
	ActiveExamID string         `json:"activeExamId"`
	Answers      map[string]int `json:"answers"`
	Results      []ExamResult   `json:"results"`

	IsLoading        bool   `json:"isLoading"`
	Error            string `json:"error"`
	ShowResultsModal bool   `json:"showResultsModal"`
}

// Exam returns the exam with the given id.
func (s *ExamState) Exam(id string) (Exam, bool) {
	if i := indexOf(s.Exams, id, examID); i >= 0 {
		return s.Exams[i], true
	}
	return Exam{}, false
}

func examID(e Exam) string { return e.ID }

// ExamDomain builds the exam domain.
func ExamDomain(deps Deps) Domain[ExamState] {
	return Domain[ExamState]{
		Key: KeyExam,
		Initial: func() ExamState {
			return ExamState{Exams: []Exam{}, Answers: map[string]int{}, Results: []ExamResult{}}
		},
		Reducer: func(s *ExamState, a Action) (*ExamState, error) {
			return reduceExam(deps, s, a)
		},
		Volatile: func(s ExamState) ExamState {
			s.IsLoading = false
			s.Error = ""
			s.ShowResultsModal = false
			return s
		},
		Repair: func(s ExamState) ExamState {
			s.Exams = nonNil(s.Exams)
			s.Results = nonNil(s.Results)
			if s.Answers == nil {
				s.Answers = map[string]int{}
			}
			if _, ok := s.Exam(s.ActiveExamID); !ok {
				s.ActiveExamID = ""
				s.Answers = map[string]int{}
			}
			return s
		},
	}
}

func reduceExam(deps Deps, s *ExamState, a Action) (*ExamState, error) {
	switch a.Type {
	case ActionStartExamGeneration:
		next := *s
		next.IsLoading = true
		next.Error = ""
		return &next, nil

	case ActionSetExam:
		exam, err := payloadAs[Exam](a)
		if err != nil {
			return nil, err
		}
		if exam.ID == "" || len(exam.Questions) == 0 {
			return nil, invalid(a, "exam needs an id and at least one question")
		}
		if exam.CreatedAt.IsZero() {
			exam.CreatedAt = deps.now()
		}
		next := *s
		next.Exams = upsert(s.Exams, exam, examID)
		next.ActiveExamID = exam.ID
		next.Answers = map[string]int{}
		next.IsLoading = false
		next.Error = ""
		return &next, nil

	case ActionSetExamError:
		msg, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		next := *s
		next.Error = msg
		next.IsLoading = false
		return &next, nil

	case ActionAnswerQuestion:
		answer, err := payloadAs[Answer](a)
		if err != nil {
			return nil, err
		}
		exam, ok := s.Exam(s.ActiveExamID)
		if !ok {
			return s, nil
		}
		qi := indexOf(exam.Questions, answer.QuestionID, func(q Question) string { return q.ID })
		if qi < 0 {
			return nil, invalid(a, "question is not part of the active exam")
		}
		if answer.OptionIndex < 0 || answer.OptionIndex >= len(exam.Questions[qi].Options) {
			return nil, invalid(a, "option index out of range")
		}
		answers := make(map[string]int, len(s.Answers)+1)
		for k, v := range s.Answers {
			answers[k] = v
		}
		answers[answer.QuestionID] = answer.OptionIndex
		next := *s
		next.Answers = answers
		return &next, nil

	case ActionSubmitExam:
		exam, ok := s.Exam(s.ActiveExamID)
		if !ok {
			return s, nil
		}
		next := *s
		next.Results = append(append([]ExamResult{}, s.Results...), scoreExam(exam, s.Answers, deps.now()))
		next.ActiveExamID = ""
		next.Answers = map[string]int{}
		next.ShowResultsModal = true
		return &next, nil

	case ActionCloseResultsModal:
		if !s.ShowResultsModal {
			return s, nil
		}
		next := *s
		next.ShowResultsModal = false
		return &next, nil

	case ActionDeleteExam:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		exams, removed := removeWhere(s.Exams, func(e Exam) bool { return e.ID == id })
		if !removed {
			return s, nil
		}
		next := *s
		next.Exams = exams
		if next.ActiveExamID == id {
			next.ActiveExamID = ""
			next.Answers = map[string]int{}
		}
		return &next, nil

	case ActionResetExam:
		next := *s
		next.ActiveExamID = ""
		next.Answers = map[string]int{}
		next.IsLoading = false
		next.Error = ""
		next.ShowResultsModal = false
		return &next, nil
	}

	return s, nil
}

func scoreExam(exam Exam, answers map[string]int, now time.Time) ExamResult {
	result := ExamResult{ExamID: exam.ID, Total: len(exam.Questions), CompletedAt: now}
	for _, q := range exam.Questions {
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectIndex {
			result.Correct++
		}
	}
	if result.Total > 0 {
		result.Percentage = float64(result.Correct) / float64(result.Total) * 100
	}
	return result
}
