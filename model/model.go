package model

import "time"

// Field describes one typed attribute of a stakeholder role.
// Values are carried as plain strings regardless of Type.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Role is a named schema for a category of stakeholder records.
// Field order is significant: it is the display and entry order.
type Role struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Stakeholder is one record conforming to a Role schema. Data maps
// field names to their (string) values.
type Stakeholder struct {
	ID   string            `json:"id"`
	Role string            `json:"role"`
	Data map[string]string `json:"data"`
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FormQuestion is one item of a form. Options is only populated for
// choice-type questions (radio, checkbox); it stays empty otherwise.
type FormQuestion struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Type     string           `json:"type"`
	Required bool             `json:"required"`
	Options  []QuestionOption `json:"options"`
}

type QuestionOption struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Form is an ordered questionnaire targeting one stakeholder role.
// Question order is the display/answer order and changes only through
// explicit add, remove or move operations.
type Form struct {
	ID                string         `json:"id,omitempty"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	TargetStakeholder string         `json:"targetStakeholder"`
	Questions         []FormQuestion `json:"questions"`
}

// FormResponse is a read-only submission record keyed by question text.
// Answers values are either a string or a list of strings for
// multi-select questions.
type FormResponse struct {
	ID          string         `json:"id"`
	SubmittedAt time.Time      `json:"submittedAt"`
	Respondent  string         `json:"respondent"`
	Answers     map[string]any `json:"answers"`
}

// ChoiceType reports whether questions of the given type carry a fixed
// option set.
func ChoiceType(questionType string) bool {
	return questionType == "radio" || questionType == "checkbox"
}
