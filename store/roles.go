package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwalls/impactboard/model"
)

// DefineRole registers a new stakeholder role. Role names are unique
// case-insensitively; defining "girls" next to "Girls" fails with
// DuplicateRoleError.
func (s *Store) DefineRole(ctx context.Context, role model.Role) (model.Role, error) {
	if err := role.CheckFields(); err != nil {
		return model.Role{}, err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var existing string
		err := tx.QueryRowContext(ctx, `
			SELECT name FROM role WHERE name = ?`,
			role.Name,
		).Scan(&existing)
		if err == nil {
			return model.DuplicateRoleError{Name: role.Name}
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO role (name) VALUES (?)`,
			role.Name,
		)
		if err != nil {
			return err
		}

		return insertRoleFields(ctx, tx, role)
	})
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

// UpdateRole replaces the field list of an existing role. The role name
// itself is immutable: there is no rename and no delete.
func (s *Store) UpdateRole(ctx context.Context, role model.Role) (model.Role, error) {
	if err := role.CheckFields(); err != nil {
		return model.Role{}, err
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var name string
		err := tx.QueryRowContext(ctx, `
			SELECT name FROM role WHERE name = ?`,
			role.Name,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleNotFoundError{Name: role.Name}
		}
		if err != nil {
			return err
		}
		// keep the registered spelling, not the caller's
		role.Name = name

		_, err = tx.ExecContext(ctx, `
			DELETE FROM role_field WHERE role_name = ?`,
			role.Name,
		)
		if err != nil {
			return err
		}

		return insertRoleFields(ctx, tx, role)
	})
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func insertRoleFields(ctx context.Context, tx *sql.Tx, role model.Role) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO role_field (role_name, position, name, type, required)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range role.Fields {
		_, err = stmt.ExecContext(ctx, role.Name, i, f.Name, f.Type, f.Required)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetRole(ctx context.Context, name string) (model.Role, error) {
	role := model.Role{}
	err := s.db.QueryRowContext(ctx, `
		SELECT name FROM role WHERE name = ?`,
		name,
	).Scan(&role.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Role{}, model.RoleNotFoundError{Name: name}
	}
	if err != nil {
		return model.Role{}, err
	}

	role.Fields, err = s.roleFields(ctx, role.Name)
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func (s *Store) ListRoles(ctx context.Context) ([]model.Role, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM role ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []model.Role{}
	for rows.Next() {
		r := model.Role{}
		if err = rows.Scan(&r.Name); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range roles {
		roles[i].Fields, err = s.roleFields(ctx, roles[i].Name)
		if err != nil {
			return nil, err
		}
	}
	return roles, nil
}

func (s *Store) roleFields(ctx context.Context, roleName string) ([]model.Field, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, type, required
		FROM role_field
		WHERE role_name = ?
		ORDER BY position`,
		roleName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := []model.Field{}
	for rows.Next() {
		f := model.Field{}
		if err = rows.Scan(&f.Name, &f.Type, &f.Required); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}
