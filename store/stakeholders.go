package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mwalls/impactboard/model"
)

// AddRecord validates candidate data against the role schema and, on
// success, inserts a stakeholder record with a generated id. Ids take
// the form PREFIX-NNN, where PREFIX is derived from the role name and
// NNN comes from a per-role counter claimed inside the insert
// transaction, so ids stay unique and deterministic for the lifetime
// of the store.
func (s *Store) AddRecord(ctx context.Context, roleName string, data map[string]string) (model.Stakeholder, error) {
	role, err := s.GetRole(ctx, roleName)
	if err != nil {
		return model.Stakeholder{}, err
	}
	if err = role.Validate(data); err != nil {
		return model.Stakeholder{}, err
	}

	rec := model.Stakeholder{Role: role.Name, Data: data}
	dataJson, err := json.Marshal(data)
	if err != nil {
		return model.Stakeholder{}, err
	}

	err = s.inTx(ctx, func(tx *sql.Tx) error {
		var seq int
		err := tx.QueryRowContext(ctx, `
			UPDATE role
			SET record_seq = record_seq + 1
			WHERE name = ?
			RETURNING record_seq`,
			role.Name,
		).Scan(&seq)
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleNotFoundError{Name: role.Name}
		}
		if err != nil {
			return err
		}

		rec.ID = fmt.Sprintf("%s-%03d", role.Prefix(), seq)

		_, err = tx.ExecContext(ctx, `
			INSERT INTO stakeholder (id, role_name, data)
			VALUES (?, ?, ?)`,
			rec.ID,
			rec.Role,
			string(dataJson),
		)
		return err
	})
	if err != nil {
		return model.Stakeholder{}, err
	}
	return rec, nil
}

// ListRecords returns the stakeholders of one role, oldest first.
func (s *Store) ListRecords(ctx context.Context, roleName string) ([]model.Stakeholder, error) {
	role, err := s.GetRole(ctx, roleName)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role_name, data
		FROM stakeholder
		WHERE role_name = ?
		ORDER BY rowid`,
		role.Name,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.Stakeholder{}
	for rows.Next() {
		rec := model.Stakeholder{}
		var dataJson string
		if err = rows.Scan(&rec.ID, &rec.Role, &dataJson); err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(dataJson), &rec.Data); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
