package domain

// Origin tags who produced a turn.
type Origin string

const (
	OriginUser      Origin = "USER"
	OriginAssistant Origin = "ASSISTANT"
)

// Turn is one message in a conversation. It is never mutated after creation.
type Turn struct {
	Content string
	Origin  Origin
}

func UserTurn(content string) Turn {
	return Turn{Content: content, Origin: OriginUser}
}

func AssistantTurn(content string) Turn {
	return Turn{Content: content, Origin: OriginAssistant}
}

func (t Turn) IsUser() bool {
	return t.Origin == OriginUser
}

// Transcript is the ordered, append-only sequence of turns for one conversation.
type Transcript struct {
	turns []Turn
}

func NewTranscript(seed ...Turn) *Transcript {
	t := &Transcript{turns: make([]Turn, 0, len(seed)+8)}
	t.turns = append(t.turns, seed...)
	return t
}

func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// Turns returns a copy so callers cannot rewrite history.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int {
	return len(t.turns)
}

func (t *Transcript) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
