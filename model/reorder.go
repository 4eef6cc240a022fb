package model

// MoveQuestion relocates the question with id qID so that it occupies
// the position currently held by targetQID. This is a single-element
// move: the question is spliced out and reinserted, so every other
// question keeps its relative order. Moving a question onto itself is
// a no-op.
func (form *Form) MoveQuestion(qID, targetQID string) error {
	if qID == targetQID {
		return nil
	}

	from := form.questionIndex(qID)
	if from < 0 {
		return QuestionNotFoundError{FormID: form.ID, QuestionID: qID}
	}
	to := form.questionIndex(targetQID)
	if to < 0 {
		return QuestionNotFoundError{FormID: form.ID, QuestionID: targetQID}
	}

	moved := form.Questions[from]
	questions := append(form.Questions[:from:from], form.Questions[from+1:]...)
	questions = append(questions[:to:to], append([]FormQuestion{moved}, questions[to:]...)...)
	form.Questions = questions
	return nil
}

func (form *Form) questionIndex(qID string) int {
	for i, q := range form.Questions {
		if q.ID == qID {
			return i
		}
	}
	return -1
}

// Question returns a pointer into the form's question list, or nil.
func (form *Form) Question(qID string) *FormQuestion {
	if i := form.questionIndex(qID); i >= 0 {
		return &form.Questions[i]
	}
	return nil
}
