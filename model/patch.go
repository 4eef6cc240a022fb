package model

// QuestionPatch is a partial question update: only non-nil fields are
// merged into the target question. Changing the type away from a
// choice type clears the option set, mirroring how questions of
// non-choice types never carry options.
type QuestionPatch struct {
	Question *string `json:"question,omitempty"`
	Type     *string `json:"type,omitempty"`
	Required *bool   `json:"required,omitempty"`
}

func (p QuestionPatch) Apply(q *FormQuestion) {
	if p.Question != nil {
		q.Question = *p.Question
	}
	if p.Type != nil {
		q.Type = *p.Type
		if !ChoiceType(q.Type) {
			q.Options = []QuestionOption{}
		} else if len(q.Options) == 0 {
			q.Options = []QuestionOption{{ID: 1, Value: "Option 1"}}
		}
	}
	if p.Required != nil {
		q.Required = *p.Required
	}
}
