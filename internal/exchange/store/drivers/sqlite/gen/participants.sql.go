// Query bindings for queries/participants.sql.
// Written by hand in the layout sqlc emits for sqlc.yaml; update together
// with the query file.

package gen

import (
	"context"
	"database/sql"
)

const createParticipant = `-- name: CreateParticipant :exec
INSERT INTO participants (
    id, exchange_id, name, email, status, likes, dislikes, allergies_sensitivities, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateParticipantParams struct {
	ID                     string
	ExchangeID             string
	Name                   string
	Email                  string
	Status                 string
	Likes                  string
	Dislikes               string
	AllergiesSensitivities string
	CreatedAt              int64
	UpdatedAt              int64
}

func (q *Queries) CreateParticipant(ctx context.Context, arg CreateParticipantParams) error {
	_, err := q.db.ExecContext(ctx, createParticipant,
		arg.ID,
		arg.ExchangeID,
		arg.Name,
		arg.Email,
		arg.Status,
		arg.Likes,
		arg.Dislikes,
		arg.AllergiesSensitivities,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteParticipant = `-- name: DeleteParticipant :execrows
DELETE FROM participants WHERE exchange_id = ? AND id = ?
`

type DeleteParticipantParams struct {
	ExchangeID string
	ID         string
}

func (q *Queries) DeleteParticipant(ctx context.Context, arg DeleteParticipantParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteParticipant, arg.ExchangeID, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getParticipant = `-- name: GetParticipant :one
SELECT id, exchange_id, name, email, status, likes, dislikes, allergies_sensitivities, created_at, updated_at FROM participants WHERE exchange_id = ? AND id = ?
`

type GetParticipantParams struct {
	ExchangeID string
	ID         string
}

func (q *Queries) GetParticipant(ctx context.Context, arg GetParticipantParams) (Participant, error) {
	row := q.db.QueryRowContext(ctx, getParticipant, arg.ExchangeID, arg.ID)
	var i Participant
	err := row.Scan(
		&i.ID,
		&i.ExchangeID,
		&i.Name,
		&i.Email,
		&i.Status,
		&i.Likes,
		&i.Dislikes,
		&i.AllergiesSensitivities,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listActiveParticipantIDs = `-- name: ListActiveParticipantIDs :many
SELECT id FROM participants WHERE exchange_id = ? AND status = 'active' ORDER BY id
`

func (q *Queries) ListActiveParticipantIDs(ctx context.Context, exchangeID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listActiveParticipantIDs, exchangeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listParticipants = `-- name: ListParticipants :many
SELECT id, exchange_id, name, email, status, likes, dislikes, allergies_sensitivities, created_at, updated_at FROM participants WHERE exchange_id = ? ORDER BY id
`

func (q *Queries) ListParticipants(ctx context.Context, exchangeID string) ([]Participant, error) {
	rows, err := q.db.QueryContext(ctx, listParticipants, exchangeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Participant
	for rows.Next() {
		var i Participant
		if err := rows.Scan(
			&i.ID,
			&i.ExchangeID,
			&i.Name,
			&i.Email,
			&i.Status,
			&i.Likes,
			&i.Dislikes,
			&i.AllergiesSensitivities,
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

const updateParticipant = `-- name: UpdateParticipant :execrows
UPDATE participants
SET status = COALESCE(?, status),
    likes = COALESCE(?, likes),
    dislikes = COALESCE(?, dislikes),
    allergies_sensitivities = COALESCE(?, allergies_sensitivities),
    updated_at = ?
WHERE exchange_id = ? AND id = ?
`

type UpdateParticipantParams struct {
	Status                 sql.NullString
	Likes                  sql.NullString
	Dislikes               sql.NullString
	AllergiesSensitivities sql.NullString
	UpdatedAt              int64
	ExchangeID             string
	ID                     string
}

func (q *Queries) UpdateParticipant(ctx context.Context, arg UpdateParticipantParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateParticipant,
		arg.Status,
		arg.Likes,
		arg.Dislikes,
		arg.AllergiesSensitivities,
		arg.UpdatedAt,
		arg.ExchangeID,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
