package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/mwalls/impactboard/model"
)

func (s *Store) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	p.ID = uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO project (id, name, description)
		VALUES (?, ?, ?)`,
		p.ID,
		p.Name,
		p.Description,
	)
	if err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, p model.Project) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE project
		SET name = ?, description = ?
		WHERE id = ?`,
		p.Name,
		p.Description,
		p.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return model.ProjectNotFoundError{ID: p.ID}
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM project WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return model.ProjectNotFoundError{ID: id}
	}
	return nil
}

func (s *Store) GetProject(ctx context.Context, id string) (model.Project, error) {
	p := model.Project{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description FROM project WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, model.ProjectNotFoundError{ID: id}
	}
	if err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description FROM project ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p := model.Project{}
		if err = rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
