package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const profileColumns = "id, name, score, media_type, created_at"

// Create validates and inserts a profile. ID and CreatedAt are assigned when
// empty; the stored profile is returned.
func (s *Store) Create(ctx context.Context, p Profile) (*Profile, error) {
	ctx = ensureContext(ctx)
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin create tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO profiles ("+profileColumns+") VALUES (?, ?, ?, ?, ?)",
			p.ID, p.Name, p.Score, p.MediaType, p.CreatedAt.Format(time.RFC3339Nano),
		); err != nil {
			return err
		}
		for i, cond := range p.Conditions {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO profile_conditions (profile_id, position, type, value, required, negate) VALUES (?, ?, ?, ?, ?, ?)",
				p.ID, i, string(cond.Type), cond.Value, boolToInt(cond.Required), boolToInt(cond.Negate),
			); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, p.Name)
		}
		return nil, fmt.Errorf("insert profile %s: %w", p.Name, err)
	}
	return &p, nil
}

// Get returns the profile with the given id.
func (s *Store) Get(ctx context.Context, id string) (*Profile, error) {
	return s.getOne(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = ?", id)
}

// GetByName returns the profile with the given name.
func (s *Store) GetByName(ctx context.Context, name string) (*Profile, error) {
	return s.getOne(ctx, "SELECT "+profileColumns+" FROM profiles WHERE name = ?", name)
}

func (s *Store) getOne(ctx context.Context, query, arg string) (*Profile, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, query, arg)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, arg)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", arg, err)
	}
	conds, err := s.loadConditions(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Conditions = conds[p.ID]
	return &p, nil
}

// List returns all profiles ordered by name.
func (s *Store) List(ctx context.Context) ([]Profile, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT "+profileColumns+" FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var (
		out []Profile
		ids []string
	)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	conds, err := s.loadConditions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Conditions = conds[out[i].ID]
	}
	return out, nil
}

// Delete removes the profile with the given name along with its conditions.
func (s *Store) Delete(ctx context.Context, name string) error {
	ctx = ensureContext(ctx)
	var affected int64
	err := retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin delete tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			"DELETE FROM profile_conditions WHERE profile_id IN (SELECT id FROM profiles WHERE name = ?)", name,
		); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM profiles WHERE name = ?", name)
		if err != nil {
			return err
		}
		if affected, err = res.RowsAffected(); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// loadConditions fetches the conditions of the given profiles, keyed by
// profile id and ordered by position.
func (s *Store) loadConditions(ctx context.Context, ids []string) (map[string][]Condition, error) {
	out := make(map[string][]Condition, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT profile_id, type, value, required, negate FROM profile_conditions WHERE profile_id IN ("+
			placeholders+") ORDER BY profile_id, position",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("load profile conditions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID, condType, value string
			required, negate           int
		)
		if err := rows.Scan(&profileID, &condType, &value, &required, &negate); err != nil {
			return nil, fmt.Errorf("scan profile condition: %w", err)
		}
		out[profileID] = append(out[profileID], Condition{
			Type:     ConditionType(condType),
			Value:    value,
			Required: required != 0,
			Negate:   negate != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile conditions: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var (
		p       Profile
		created string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Score, &p.MediaType, &created); err != nil {
		return Profile{}, err
	}
	if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
		p.CreatedAt = ts
	}
	return p, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
