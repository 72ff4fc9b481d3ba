// Query bindings for queries/exchanges.sql.
// Written by hand in the layout sqlc emits for sqlc.yaml; update together
// with the query file.

package gen

import (
	"context"
	"database/sql"
)

const createExchange = `-- name: CreateExchange :exec
INSERT INTO exchanges (
    id, title, date, location, description, spending_limit, assignments_locked, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateExchangeParams struct {
	ID                string
	Title             string
	Date              sql.NullString
	Location          string
	Description       string
	SpendingLimit     int64
	AssignmentsLocked bool
	CreatedAt         int64
	UpdatedAt         int64
}

func (q *Queries) CreateExchange(ctx context.Context, arg CreateExchangeParams) error {
	_, err := q.db.ExecContext(ctx, createExchange,
		arg.ID,
		arg.Title,
		arg.Date,
		arg.Location,
		arg.Description,
		arg.SpendingLimit,
		arg.AssignmentsLocked,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getExchange = `-- name: GetExchange :one
SELECT id, title, date, location, description, spending_limit, assignments_locked, created_at, updated_at FROM exchanges WHERE id = ?
`

func (q *Queries) GetExchange(ctx context.Context, id string) (Exchange, error) {
	row := q.db.QueryRowContext(ctx, getExchange, id)
	var i Exchange
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Date,
		&i.Location,
		&i.Description,
		&i.SpendingLimit,
		&i.AssignmentsLocked,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getExchangeByTitle = `-- name: GetExchangeByTitle :one
SELECT id, title, date, location, description, spending_limit, assignments_locked, created_at, updated_at FROM exchanges WHERE title = ?
`

func (q *Queries) GetExchangeByTitle(ctx context.Context, title string) (Exchange, error) {
	row := q.db.QueryRowContext(ctx, getExchangeByTitle, title)
	var i Exchange
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Date,
		&i.Location,
		&i.Description,
		&i.SpendingLimit,
		&i.AssignmentsLocked,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listExchanges = `-- name: ListExchanges :many
SELECT id, title, date, location, description, spending_limit, assignments_locked, created_at, updated_at FROM exchanges ORDER BY id
`

func (q *Queries) ListExchanges(ctx context.Context) ([]Exchange, error) {
	rows, err := q.db.QueryContext(ctx, listExchanges)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Exchange
	for rows.Next() {
		var i Exchange
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Date,
			&i.Location,
			&i.Description,
			&i.SpendingLimit,
			&i.AssignmentsLocked,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setAssignmentsLocked = `-- name: SetAssignmentsLocked :execrows
UPDATE exchanges SET assignments_locked = ?, updated_at = ? WHERE id = ?
`

type SetAssignmentsLockedParams struct {
	AssignmentsLocked bool
	UpdatedAt         int64
	ID                string
}

func (q *Queries) SetAssignmentsLocked(ctx context.Context, arg SetAssignmentsLockedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setAssignmentsLocked, arg.AssignmentsLocked, arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateExchangeDetails = `-- name: UpdateExchangeDetails :execrows
UPDATE exchanges
SET date = ?, location = ?, description = ?, spending_limit = ?, updated_at = ?
WHERE id = ?
`

type UpdateExchangeDetailsParams struct {
	Date          sql.NullString
	Location      string
	Description   string
	SpendingLimit int64
	UpdatedAt     int64
	ID            string
}

func (q *Queries) UpdateExchangeDetails(ctx context.Context, arg UpdateExchangeDetailsParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateExchangeDetails,
		arg.Date,
		arg.Location,
		arg.Description,
		arg.SpendingLimit,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
