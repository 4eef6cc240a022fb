package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwalls/impactboard/model"
)

// CreateForm assigns a fresh id and stores the definition.
func (s *Store) CreateForm(ctx context.Context, form model.Form) (model.Form, error) {
	form.ID = uuid.NewString()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO form (id, title, description, target_stakeholder, question_seq)
			VALUES (?, ?, ?, ?, ?)`,
			form.ID,
			form.Title,
			form.Description,
			form.TargetStakeholder,
			len(form.Questions),
		)
		if err != nil {
			return err
		}

		// ids supplied by the caller are discarded: every question gets
		// one from the form's own sequence
		for i := range form.Questions {
			form.Questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
		return insertQuestions(ctx, tx, form)
	})
	if err != nil {
		return model.Form{}, err
	}
	return form, nil
}

// UpdateForm replaces title, description, target role and the whole
// question list of an existing form. Question ids present in the
// incoming definition are kept; questions without an id are treated as
// new and numbered from the form's sequence.
func (s *Store) UpdateForm(ctx context.Context, form model.Form) (model.Form, error) {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		seq, err := formSeq(ctx, tx, form.ID)
		if err != nil {
			return err
		}
		for i := range form.Questions {
			if form.Questions[i].ID == "" {
				seq++
				form.Questions[i].ID = fmt.Sprintf("q%d", seq)
			}
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE form
			SET title = ?, description = ?, target_stakeholder = ?, question_seq = ?
			WHERE id = ?`,
			form.Title,
			form.Description,
			form.TargetStakeholder,
			seq,
			form.ID,
		)
		if err != nil {
			return err
		}

		return replaceQuestions(ctx, tx, form)
	})
	if err != nil {
		return model.Form{}, err
	}
	return form, nil
}

// DeleteForm removes a form with its questions and responses. Deleting
// an unknown id fails with FormNotFoundError.
func (s *Store) DeleteForm(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM form_response WHERE form_id = ?`, id)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM form_question WHERE form_id = ?`, id)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM form WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n < 1 {
			return model.FormNotFoundError{ID: id}
		}
		return nil
	})
}

func (s *Store) GetForm(ctx context.Context, id string) (model.Form, error) {
	form := model.Form{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, target_stakeholder
		FROM form
		WHERE id = ?`,
		id,
	).Scan(&form.ID, &form.Title, &form.Description, &form.TargetStakeholder)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Form{}, model.FormNotFoundError{ID: id}
	}
	if err != nil {
		return model.Form{}, err
	}

	form.Questions, err = s.formQuestions(ctx, id)
	if err != nil {
		return model.Form{}, err
	}
	return form, nil
}

func (s *Store) ListForms(ctx context.Context) ([]model.Form, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, target_stakeholder
		FROM form
		ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		f := model.Form{}
		err = rows.Scan(&f.ID, &f.Title, &f.Description, &f.TargetStakeholder)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range forms {
		forms[i].Questions, err = s.formQuestions(ctx, forms[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return forms, nil
}

// AddQuestion appends a question of the given type to the form.
// Questions start out required; radio and checkbox questions are seeded
// with a single "Option 1", every other type carries no options.
func (s *Store) AddQuestion(ctx context.Context, formID, questionType string) (model.FormQuestion, error) {
	q := model.FormQuestion{
		Type:     questionType,
		Required: true,
		Options:  []model.QuestionOption{},
	}
	if model.ChoiceType(questionType) {
		q.Options = []model.QuestionOption{{ID: 1, Value: "Option 1"}}
	}

	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		seq, err := formSeq(ctx, tx, formID)
		if err != nil {
			return err
		}
		seq++
		q.ID = fmt.Sprintf("q%d", seq)

		_, err = tx.ExecContext(ctx, `
			UPDATE form SET question_seq = ? WHERE id = ?`,
			seq, formID,
		)
		if err != nil {
			return err
		}

		form.Questions = append(form.Questions, q)
		return nil
	})
	if err != nil {
		return model.FormQuestion{}, err
	}
	return q, nil
}

// UpdateQuestion merges a partial update into the matching question.
func (s *Store) UpdateQuestion(ctx context.Context, formID, qID string, patch model.QuestionPatch) (model.FormQuestion, error) {
	updated := model.FormQuestion{}
	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		q := form.Question(qID)
		if q == nil {
			return model.QuestionNotFoundError{FormID: formID, QuestionID: qID}
		}
		patch.Apply(q)
		updated = *q
		return nil
	})
	if err != nil {
		return model.FormQuestion{}, err
	}
	return updated, nil
}

func (s *Store) RemoveQuestion(ctx context.Context, formID, qID string) error {
	return s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		i := 0
		found := false
		for _, q := range form.Questions {
			if q.ID == qID {
				found = true
				continue
			}
			form.Questions[i] = q
			i++
		}
		if !found {
			return model.QuestionNotFoundError{FormID: formID, QuestionID: qID}
		}
		form.Questions = form.Questions[:i]
		return nil
	})
}

// MoveQuestion relocates qID to the position of targetQID, keeping the
// relative order of every other question.
func (s *Store) MoveQuestion(ctx context.Context, formID, qID, targetQID string) (model.Form, error) {
	moved := model.Form{}
	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		if err := form.MoveQuestion(qID, targetQID); err != nil {
			return err
		}
		moved = *form
		return nil
	})
	if err != nil {
		return model.Form{}, err
	}
	return moved, nil
}

// AddOption appends a new option to a choice-type question.
func (s *Store) AddOption(ctx context.Context, formID, qID, value string) (model.FormQuestion, error) {
	updated := model.FormQuestion{}
	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		q := form.Question(qID)
		if q == nil {
			return model.QuestionNotFoundError{FormID: formID, QuestionID: qID}
		}

		next := 0
		for _, opt := range q.Options {
			if opt.ID > next {
				next = opt.ID
			}
		}
		q.Options = append(q.Options, model.QuestionOption{ID: next + 1, Value: value})
		updated = *q
		return nil
	})
	if err != nil {
		return model.FormQuestion{}, err
	}
	return updated, nil
}

func (s *Store) UpdateOption(ctx context.Context, formID, qID string, optionID int, value string) (model.FormQuestion, error) {
	updated := model.FormQuestion{}
	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		q := form.Question(qID)
		if q == nil {
			return model.QuestionNotFoundError{FormID: formID, QuestionID: qID}
		}
		for i := range q.Options {
			if q.Options[i].ID == optionID {
				q.Options[i].Value = value
				updated = *q
				return nil
			}
		}
		return model.OptionNotFoundError{QuestionID: qID, OptionID: optionID}
	})
	if err != nil {
		return model.FormQuestion{}, err
	}
	return updated, nil
}

func (s *Store) RemoveOption(ctx context.Context, formID, qID string, optionID int) (model.FormQuestion, error) {
	updated := model.FormQuestion{}
	err := s.mutateForm(ctx, formID, func(tx *sql.Tx, form *model.Form) error {
		q := form.Question(qID)
		if q == nil {
			return model.QuestionNotFoundError{FormID: formID, QuestionID: qID}
		}
		for i := range q.Options {
			if q.Options[i].ID == optionID {
				q.Options = append(q.Options[:i:i], q.Options[i+1:]...)
				updated = *q
				return nil
			}
		}
		return model.OptionNotFoundError{QuestionID: qID, OptionID: optionID}
	})
	if err != nil {
		return model.FormQuestion{}, err
	}
	return updated, nil
}

// mutateForm loads the form with its questions, hands it to fn, and
// writes the question list back wholesale in the same transaction.
func (s *Store) mutateForm(ctx context.Context, formID string, fn func(tx *sql.Tx, form *model.Form) error) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		form := model.Form{}
		err := tx.QueryRowContext(ctx, `
			SELECT id, title, description, target_stakeholder
			FROM form
			WHERE id = ?`,
			formID,
		).Scan(&form.ID, &form.Title, &form.Description, &form.TargetStakeholder)
		if errors.Is(err, sql.ErrNoRows) {
			return model.FormNotFoundError{ID: formID}
		}
		if err != nil {
			return err
		}

		form.Questions, err = queryQuestions(ctx, tx, formID)
		if err != nil {
			return err
		}

		if err = fn(tx, &form); err != nil {
			return err
		}

		return replaceQuestions(ctx, tx, form)
	})
}

func formSeq(ctx context.Context, tx *sql.Tx, formID string) (int, error) {
	var seq int
	err := tx.QueryRowContext(ctx, `
		SELECT question_seq FROM form WHERE id = ?`,
		formID,
	).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.FormNotFoundError{ID: formID}
	}
	return seq, err
}

func replaceQuestions(ctx context.Context, tx *sql.Tx, form model.Form) error {
	_, err := tx.ExecContext(ctx, `
		DELETE FROM form_question WHERE form_id = ?`,
		form.ID,
	)
	if err != nil {
		return err
	}
	return insertQuestions(ctx, tx, form)
}

func insertQuestions(ctx context.Context, tx *sql.Tx, form model.Form) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO form_question (form_id, id, position, question, type, required, options)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range form.Questions {
		q := &form.Questions[i]
		if q.Options == nil {
			q.Options = []model.QuestionOption{}
		}
		optionsJson, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, form.ID, q.ID, i, q.Question, q.Type, q.Required, string(optionsJson))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) formQuestions(ctx context.Context, formID string) ([]model.FormQuestion, error) {
	return queryQuestions(ctx, s.db, formID)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryQuestions(ctx context.Context, q querier, formID string) ([]model.FormQuestion, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, question, type, required, options
		FROM form_question
		WHERE form_id = ?
		ORDER BY position`,
		formID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []model.FormQuestion{}
	for rows.Next() {
		fq := model.FormQuestion{}
		var optionsJson string
		err = rows.Scan(&fq.ID, &fq.Question, &fq.Type, &fq.Required, &optionsJson)
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(optionsJson), &fq.Options); err != nil {
			return nil, err
		}
		questions = append(questions, fq)
	}
	return questions, rows.Err()
}
