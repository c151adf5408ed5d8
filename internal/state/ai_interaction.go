package state

import "time"

// AI interaction action types.
const (
	ActionAddAIMessage        ActionType = "ADD_AI_MESSAGE"
	ActionSetAIThinking       ActionType = "SET_AI_THINKING"
	ActionSetAIError          ActionType = "SET_AI_ERROR"
	ActionSetAIPersona        ActionType = "SET_AI_PERSONA"
	ActionClearAIConversation ActionType = "CLEAR_AI_CONVERSATION"
)

// MaxAIMessages bounds the persisted conversation; older messages are
// dropped first.
const MaxAIMessages = 100

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AIMessage is one turn of the tutor conversation.
type AIMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// AIInteractionState holds the tutor conversation.
type AIInteractionState struct {
	Messages []AIMessage `json:"messages"`
	Persona  string      `json:"persona"`

	IsThinking bool   `json:"isThinking"`
	Error      string `json:"error"`
}

const defaultPersona = "tutor"

// AIInteractionDomain builds the ai-interaction domain.
func AIInteractionDomain(deps Deps) Domain[AIInteractionState] {
	return Domain[AIInteractionState]{
		Key: KeyAIInteraction,
		Initial: func() AIInteractionState {
			return AIInteractionState{Messages: []AIMessage{}, Persona: defaultPersona}
		},
		Reducer: func(s *AIInteractionState, a Action) (*AIInteractionState, error) {
			return reduceAIInteraction(deps, s, a)
		},
		Volatile: func(s AIInteractionState) AIInteractionState {
			s.IsThinking = false
			s.Error = ""
			return s
		},
		Repair: func(s AIInteractionState) AIInteractionState {
			s.Messages = nonNil(s.Messages)
			if len(s.Messages) > MaxAIMessages {
				s.Messages = s.Messages[len(s.Messages)-MaxAIMessages:]
			}
			if s.Persona == "" {
				s.Persona = defaultPersona
			}
			return s
		},
	}
}

func reduceAIInteraction(deps Deps, s *AIInteractionState, a Action) (*AIInteractionState, error) {
	switch a.Type {
	case ActionAddAIMessage:
		msg, err := payloadAs[AIMessage](a)
		if err != nil {
			return nil, err
		}
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			return nil, invalid(a, "role must be user or assistant")
		}
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = deps.now()
		}
		messages := append(append(make([]AIMessage, 0, len(s.Messages)+1), s.Messages...), msg)
		if len(messages) > MaxAIMessages {
			messages = messages[len(messages)-MaxAIMessages:]
		}
		next := *s
		next.Messages = messages
		if msg.Role == RoleAssistant {
			next.IsThinking = false
		}
		next.Error = ""
		return &next, nil

	case ActionSetAIThinking:
		thinking, err := payloadAs[bool](a)
		if err != nil {
			return nil, err
		}
		if s.IsThinking == thinking {
			return s, nil
		}
		next := *s
		next.IsThinking = thinking
		return &next, nil

	case ActionSetAIError:
		msg, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		next := *s
		next.Error = msg
		next.IsThinking = false
		return &next, nil

	case ActionSetAIPersona:
		persona, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		if persona == "" {
			return nil, invalid(a, "persona must not be empty")
		}
		if s.Persona == persona {
			return s, nil
		}
		next := *s
		next.Persona = persona
		return &next, nil

	case ActionClearAIConversation:
		if len(s.Messages) == 0 && !s.IsThinking && s.Error == "" {
			return s, nil
		}
		next := *s
		next.Messages = []AIMessage{}
		next.IsThinking = false
		next.Error = ""
		return &next, nil
	}

	return s, nil
}
