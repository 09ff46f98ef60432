// Package http holds the instructor-facing handlers: quiz script generation
// and certificate preview/download.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizforge/quizforge/internal/codegen"
	"github.com/quizforge/quizforge/internal/quiz"
)

type generateReq struct {
	Title         string `json:"title"`
	Instructor    string `json:"instructor"`
	QuizType      string `json:"quiz_type"`
	QuestionsText string `json:"questions_text"`
}

type generateResp struct {
	Code          string `json:"code"`
	QuestionCount int    `json:"question_count"`
	SkippedLines  int    `json:"skipped_lines"`
}

// POST /api/quizzes
// Accepts JSON or a urlencoded form with title, instructor, quiz_type and
// questions_text. Any blank required field blocks generation.
func GenerateQuizHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeGenerateReq(r)
		if err != nil {
			http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		var missing []string
		for _, f := range []struct{ name, val string }{
			{"title", req.Title},
			{"instructor", req.Instructor},
			{"questions_text", req.QuestionsText},
		} {
			if strings.TrimSpace(f.val) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			http.Error(w, "missing required fields: "+strings.Join(missing, ", "), http.StatusUnprocessableEntity)
			return
		}

		typ, ok := quiz.ParseType(req.QuizType)
		if !ok {
			http.Error(w, "unknown quiz_type", http.StatusBadRequest)
			return
		}

		records, skipped := quiz.ParseQuestions(typ, req.QuestionsText)
		code, err := codegen.Emit(quiz.Config{
			Title:      strings.TrimSpace(req.Title),
			Instructor: strings.TrimSpace(req.Instructor),
			Type:       typ,
			Questions:  records,
		})
		if err != nil {
			http.Error(w, "generate: "+err.Error(), http.StatusInternalServerError)
			return
		}

		_ = json.NewEncoder(w).Encode(generateResp{
			Code:          code,
			QuestionCount: len(records),
			SkippedLines:  skipped,
		})
	}
}

func decodeGenerateReq(r *http.Request) (generateReq, error) {
	var req generateReq
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return req, json.NewDecoder(r.Body).Decode(&req)
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Title = r.PostFormValue("title")
	req.Instructor = r.PostFormValue("instructor")
	req.QuizType = r.PostFormValue("quiz_type")
	req.QuestionsText = r.PostFormValue("questions_text")
	return req, nil
}
