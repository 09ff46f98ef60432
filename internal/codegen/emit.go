// Package codegen renders the standalone student quiz script from a parsed
// quiz configuration. The output is Python source for a Gradio app; nothing
// here executes it.
package codegen

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

type templateData struct {
	Title      string
	Instructor string
	QuizType   string
	Questions  string
}

// Emit returns the complete student script for cfg. The render is a pure
// function of cfg: repeated calls produce byte-identical output.
func Emit(cfg quiz.Config) (string, error) {
	data := templateData{
		Title:      pyEscape(cfg.Title),
		Instructor: pyEscape(cfg.Instructor),
		QuizType:   pyEscape(string(cfg.Type)),
		Questions:  questionsLiteral(cfg.Questions),
	}
	var b strings.Builder
	if err := colabTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render quiz script: %w", err)
	}
	return b.String(), nil
}

// questionsLiteral renders the question records as a Python list literal,
// one dict per line. Only the digest of each answer is embedded.
func questionsLiteral(records []quiz.QuestionRecord) string {
	if len(records) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteString("[\n")
	for _, rec := range records {
		b.WriteString("    {\"question\": ")
		b.WriteString(pyQuote(rec.Question))
		if rec.Options != nil {
			b.WriteString(", \"options\": [")
			for i, opt := range rec.Options {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(pyQuote(opt))
			}
			b.WriteString("]")
		}
		b.WriteString(", \"answer_hash\": ")
		b.WriteString(pyQuote(rec.AnswerHash))
		b.WriteString("},\n")
	}
	b.WriteString("]")
	return b.String()
}

var pyEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"'", `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// pyEscape makes s safe inside a Python quoted string literal. Instructor
// input is otherwise interpolated verbatim into program text, so this is the
// one barrier against a stray quote breaking the emitted script.
func pyEscape(s string) string {
	return pyEscaper.Replace(s)
}

// pyQuote returns s as a complete double-quoted Python literal.
func pyQuote(s string) string {
	return `"` + pyEscape(s) + `"`
}
