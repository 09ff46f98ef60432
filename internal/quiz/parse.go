package quiz

import "strings"

// Minimum comma-separated fields per line: multiple choice needs a question,
// at least one option and the correct answer last; text answer needs a
// question and the answer.
const (
	minFieldsMultipleChoice = 3
	minFieldsTextAnswer     = 2
)

// ParseQuestions converts line-oriented instructor input into question
// records. One question per line, fields separated by commas and trimmed.
// Blank lines are ignored. Lines with too few fields for the quiz type are
// skipped; the skip count is returned so the caller can surface it.
func ParseQuestions(typ Type, text string) ([]QuestionRecord, int) {
	var records []QuestionRecord
	skipped := 0
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		switch typ {
		case TypeMultipleChoice:
			if len(parts) < minFieldsMultipleChoice {
				skipped++
				continue
			}
			records = append(records, QuestionRecord{
				Question:   parts[0],
				Options:    parts[1 : len(parts)-1],
				AnswerHash: HashAnswer(parts[len(parts)-1]),
			})
		default:
			if len(parts) < minFieldsTextAnswer {
				skipped++
				continue
			}
			records = append(records, QuestionRecord{
				Question:   parts[0],
				AnswerHash: HashAnswer(parts[1]),
			})
		}
	}
	return records, skipped
}
