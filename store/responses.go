package store

import (
	"context"
	"encoding/json"

	"github.com/mwalls/impactboard/model"
)

// ListResponses returns the submissions recorded for one form, newest
// first. Responses are read-only: they enter the store through seeding
// only and are never mutated through the API.
func (s *Store) ListResponses(ctx context.Context, formID string) ([]model.FormResponse, error) {
	if _, err := s.GetForm(ctx, formID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, submitted_at, respondent, answers
		FROM form_response
		WHERE form_id = ?
		ORDER BY submitted_at DESC`,
		formID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []model.FormResponse{}
	for rows.Next() {
		resp := model.FormResponse{}
		var answersJson string
		err = rows.Scan(&resp.ID, &resp.SubmittedAt, &resp.Respondent, &answersJson)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(answersJson), &resp.Answers); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

func (s *Store) addResponse(ctx context.Context, formID string, resp model.FormResponse) error {
	answersJson, err := json.Marshal(resp.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO form_response (id, form_id, submitted_at, respondent, answers)
		VALUES (?, ?, ?, ?, ?)`,
		resp.ID,
		formID,
		resp.SubmittedAt,
		resp.Respondent,
		string(answersJson),
	)
	return err
}
