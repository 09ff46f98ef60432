package quiz

// Type selects how question lines are interpreted and how the student-side
// form renders each question.
type Type string

const (
	TypeMultipleChoice Type = "Multiple Choice"
	TypeTextAnswer     Type = "Text Answer"
)

// ParseType maps a form value to a quiz Type. Empty input falls back to
// multiple choice, matching the form's default selection.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeMultipleChoice, "":
		return TypeMultipleChoice, true
	case TypeTextAnswer:
		return TypeTextAnswer, true
	default:
		return "", false
	}
}

// QuestionRecord is one parsed question. The plaintext answer is hashed at
// parse time and never stored; Options is nil for text-answer quizzes.
type QuestionRecord struct {
	Question   string   `json:"question"`
	Options    []string `json:"options,omitempty"`
	AnswerHash string   `json:"answer_hash"`
}

// Config is the full instructor-supplied specification of one quiz.
type Config struct {
	Title      string           `json:"title"`
	Instructor string           `json:"instructor"`
	Type       Type             `json:"quiz_type"`
	Questions  []QuestionRecord `json:"questions"`
}
