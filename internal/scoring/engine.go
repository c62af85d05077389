// Package scoring grades quiz and reading submissions against the
// authoritative answer keys for a chapter. Grading is a pure computation:
// nothing about an attempt is persisted.
package scoring

// AnswerKey is the authoritative answer for one question.
type AnswerKey struct {
	QuestionID    uint
	CorrectAnswer string
}

// SubmittedAnswer is one answer from a client submission.
type SubmittedAnswer struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuestionResult reports correctness for one submitted answer.
type QuestionResult struct {
	QuestionID    uint   `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Result is the outcome of grading one submission. Total counts the
// chapter's authoritative questions, not the submitted answers: a partial
// submission is still graded out of the full question count.
type Result struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

// Grade scores a submission against the answer keys. Answers referencing
// an unknown question id are dropped: they appear in neither the score nor
// the per-question results. The comparison is a case-sensitive match on
// the single option letter. Results keep submission order.
func Grade(keys []AnswerKey, submitted []SubmittedAnswer) Result {
	byID := make(map[uint]string, len(keys))
	for _, k := range keys {
		byID[k.QuestionID] = k.CorrectAnswer
	}

	result := Result{
		Total:   len(keys),
		Results: make([]QuestionResult, 0, len(submitted)),
	}

	for _, ans := range submitted {
		correct, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		isCorrect := ans.Answer == correct
		if isCorrect {
			result.Score++
		}
		result.Results = append(result.Results, QuestionResult{
			QuestionID:    ans.QuestionID,
			IsCorrect:     isCorrect,
			CorrectAnswer: correct,
		})
	}

	return result
}
