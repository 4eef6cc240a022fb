package model

import "fmt"

// Domain validation errors. All of these are user-facing failures that
// map to a 4xx response; none is a system fault.

type DuplicateRoleError struct {
	Name string
}

func (e DuplicateRoleError) Error() string {
	return fmt.Sprintf("role %q already exists", e.Name)
}

type RoleNotFoundError struct {
	Name string
}

func (e RoleNotFoundError) Error() string {
	return fmt.Sprintf("role %q not found", e.Name)
}

type DuplicateFieldError struct {
	Role  string
	Field string
}

func (e DuplicateFieldError) Error() string {
	return fmt.Sprintf("role %q declares field %q more than once", e.Role, e.Field)
}

type MissingRequiredFieldError struct {
	Field string
}

func (e MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

type FormNotFoundError struct {
	ID string
}

func (e FormNotFoundError) Error() string {
	return fmt.Sprintf("form %q not found", e.ID)
}

type QuestionNotFoundError struct {
	FormID     string
	QuestionID string
}

func (e QuestionNotFoundError) Error() string {
	return fmt.Sprintf("question %q not found in form %q", e.QuestionID, e.FormID)
}

type OptionNotFoundError struct {
	QuestionID string
	OptionID   int
}

func (e OptionNotFoundError) Error() string {
	return fmt.Sprintf("option %d not found in question %q", e.OptionID, e.QuestionID)
}

type ProjectNotFoundError struct {
	ID string
}

func (e ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.ID)
}

type EmptyImportFileError struct{}

func (EmptyImportFileError) Error() string {
	return "import file is empty or has no header row"
}
