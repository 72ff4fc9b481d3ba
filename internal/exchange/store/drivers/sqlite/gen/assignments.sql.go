// Query bindings for queries/assignments.sql.
// Written by hand in the layout sqlc emits for sqlc.yaml; update together
// with the query file.

package gen

import (
	"context"
)

const countAssignments = `-- name: CountAssignments :one
SELECT COUNT(*) FROM assignments WHERE exchange_id = ?
`

func (q *Queries) CountAssignments(ctx context.Context, exchangeID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAssignments, exchangeID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createAssignment = `-- name: CreateAssignment :exec
INSERT INTO assignments (id, exchange_id, giver_id, receiver_id, created_at)
VALUES (?, ?, ?, ?, ?)
`

type CreateAssignmentParams struct {
	ID         string
	ExchangeID string
	GiverID    string
	ReceiverID string
	CreatedAt  int64
}

func (q *Queries) CreateAssignment(ctx context.Context, arg CreateAssignmentParams) error {
	_, err := q.db.ExecContext(ctx, createAssignment,
		arg.ID,
		arg.ExchangeID,
		arg.GiverID,
		arg.ReceiverID,
		arg.CreatedAt,
	)
	return err
}

const deleteAssignments = `-- name: DeleteAssignments :exec
DELETE FROM assignments WHERE exchange_id = ?
`

func (q *Queries) DeleteAssignments(ctx context.Context, exchangeID string) error {
	_, err := q.db.ExecContext(ctx, deleteAssignments, exchangeID)
	return err
}

const getAssignmentByGiver = `-- name: GetAssignmentByGiver :one
SELECT id, exchange_id, giver_id, receiver_id, created_at FROM assignments WHERE exchange_id = ? AND giver_id = ?
`

type GetAssignmentByGiverParams struct {
	ExchangeID string
	GiverID    string
}

func (q *Queries) GetAssignmentByGiver(ctx context.Context, arg GetAssignmentByGiverParams) (Assignment, error) {
	row := q.db.QueryRowContext(ctx, getAssignmentByGiver, arg.ExchangeID, arg.GiverID)
	var i Assignment
	err := row.Scan(
		&i.ID,
		&i.ExchangeID,
		&i.GiverID,
		&i.ReceiverID,
		&i.CreatedAt,
	)
	return i, err
}

const listAssignments = `-- name: ListAssignments :many
SELECT id, exchange_id, giver_id, receiver_id, created_at FROM assignments WHERE exchange_id = ? ORDER BY id
`

func (q *Queries) ListAssignments(ctx context.Context, exchangeID string) ([]Assignment, error) {
	rows, err := q.db.QueryContext(ctx, listAssignments, exchangeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Assignment
	for rows.Next() {
		var i Assignment
		if err := rows.Scan(
			&i.ID,
			&i.ExchangeID,
			&i.GiverID,
			&i.ReceiverID,
			&i.CreatedAt,
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
