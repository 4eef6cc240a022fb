package store

import (
	"context"
	"time"

	"github.com/mwalls/impactboard/model"
)

// Seed populates an empty store with a demo dataset: three projects,
// two stakeholder roles with a handful of records, two forms and a few
// responses. It does nothing when any role is already registered, so
// running with -seed against an existing database is safe.
func (s *Store) Seed(ctx context.Context) error {
	roles, err := s.ListRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) > 0 {
		return nil
	}

	for _, p := range []model.Project{
		{Name: "Tech Empowerment for At-Risk Girls", Description: "A comprehensive program focused on empowering vulnerable girls through technical education and awareness"},
		{Name: "Digital Safety Workshop Series", Description: "Workshop series teaching online safety, digital literacy, and cybersecurity awareness"},
		{Name: "Community Outreach Initiative", Description: "Engaging local communities to build awareness and support networks"},
	} {
		if _, err := s.CreateProject(ctx, p); err != nil {
			return err
		}
	}

	for _, role := range []model.Role{
		{
			Name: "Girls",
			Fields: []model.Field{
				{Name: "Full Name", Type: "text", Required: true},
				{Name: "Age", Type: "number", Required: true},
				{Name: "Location", Type: "text", Required: true},
				{Name: "Education Level", Type: "text", Required: true},
				{Name: "Risk Factors", Type: "text", Required: true},
				{Name: "Guardian Contact", Type: "text", Required: true},
			},
		},
		{
			Name: "Teachers",
			Fields: []model.Field{
				{Name: "Full Name", Type: "text", Required: true},
				{Name: "Specialization", Type: "text", Required: true},
				{Name: "Years of Experience", Type: "number", Required: true},
				{Name: "Training Certifications", Type: "text", Required: true},
				{Name: "Languages Spoken", Type: "text", Required: true},
				{Name: "Contact Number", Type: "text", Required: true},
			},
		},
	} {
		if _, err := s.DefineRole(ctx, role); err != nil {
			return err
		}
	}

	seedRecords := []struct {
		role string
		data map[string]string
	}{
		{"Girls", map[string]string{
			"Full Name":        "Sarah Johnson",
			"Age":              "15",
			"Location":         "Mumbai, India",
			"Education Level":  "9th Grade",
			"Risk Factors":     "Limited family support, economically disadvantaged",
			"Guardian Contact": "+91 98765 43210",
		}},
		{"Girls", map[string]string{
			"Full Name":        "Maria Garcia",
			"Age":              "16",
			"Location":         "Bogotá, Colombia",
			"Education Level":  "10th Grade",
			"Risk Factors":     "Displaced family, limited access to education",
			"Guardian Contact": "+57 321 234 5678",
		}},
		{"Teachers", map[string]string{
			"Full Name":               "Dr. Priya Sharma",
			"Specialization":          "Computer Science & Digital Safety",
			"Years of Experience":     "8",
			"Training Certifications": "Child Protection, Digital Security",
			"Languages Spoken":        "English, Hindi, Marathi",
			"Contact Number":          "+91 99999 88888",
		}},
		{"Teachers", map[string]string{
			"Full Name":               "Isabella Martinez",
			"Specialization":          "Social Work & Counseling",
			"Years of Experience":     "12",
			"Training Certifications": "Trauma-Informed Care, Youth Counseling",
			"Languages Spoken":        "Spanish, English, Portuguese",
			"Contact Number":          "+57 300 123 4567",
		}},
	}
	for _, rec := range seedRecords {
		if _, err := s.AddRecord(ctx, rec.role, rec.data); err != nil {
			return err
		}
	}

	assessment, err := s.CreateForm(ctx, model.Form{
		Title:             "Initial Assessment Form",
		Description:       "Evaluate the current situation and needs of girls entering the program",
		TargetStakeholder: "Girls",
		Questions: []model.FormQuestion{
			{
				Question: "What are your primary educational goals?",
				Type:     "textarea",
				Required: true,
			},
			{
				Question: "What technical skills would you like to learn?",
				Type:     "checkbox",
				Required: true,
				Options: []model.QuestionOption{
					{ID: 1, Value: "Programming"},
					{ID: 2, Value: "Digital Design"},
					{ID: 3, Value: "Web Development"},
					{ID: 4, Value: "Data Analysis"},
				},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = s.CreateForm(ctx, model.Form{
		Title:             "Teacher Progress Report",
		Description:       "Monthly progress tracking for students under each teacher",
		TargetStakeholder: "Teachers",
		Questions: []model.FormQuestion{
			{
				Question: "Student's progress in technical skills",
				Type:     "rating",
				Required: true,
			},
		},
	})
	if err != nil {
		return err
	}

	seedResponses := []model.FormResponse{
		{
			ID:          "1",
			SubmittedAt: time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC),
			Respondent:  "Sarah Johnson",
			Answers: map[string]any{
				"What are your primary educational goals?":       "I want to learn programming and get into tech",
				"What technical skills would you like to learn?": []string{"Programming", "Web Development"},
			},
		},
		{
			ID:          "2",
			SubmittedAt: time.Date(2024, 3, 19, 15, 45, 0, 0, time.UTC),
			Respondent:  "Maria Garcia",
			Answers: map[string]any{
				"What are your primary educational goals?":       "Interested in digital design and web development",
				"What technical skills would you like to learn?": []string{"Digital Design", "Web Development"},
			},
		},
		{
			ID:          "3",
			SubmittedAt: time.Date(2024, 3, 18, 9, 15, 0, 0, time.UTC),
			Respondent:  "Emily Chen",
			Answers: map[string]any{
				"What are your primary educational goals?":       "Want to become a data analyst",
				"What technical skills would you like to learn?": []string{"Programming", "Data Analysis"},
			},
		},
	}
	for _, resp := range seedResponses {
		if err := s.addResponse(ctx, assessment.ID, resp); err != nil {
			return err
		}
	}

	return nil
}
