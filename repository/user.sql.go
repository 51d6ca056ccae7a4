package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const selectUserById = `-- name: SelectUserById :one
SELECT id, name, timezone, created_at FROM "user" WHERE id = $1
`

func (q *Queries) SelectUserById(ctx context.Context, id pgtype.UUID) (User, error) {
	row := q.db.QueryRow(ctx, selectUserById, id)
	var i User
	err := row.Scan(&i.ID, &i.Name, &i.Timezone, &i.CreatedAt)
	return i, err
}

const selectUsers = `-- name: SelectUsers :many
SELECT id, name, timezone, created_at FROM "user" ORDER BY created_at LIMIT $1
`

func (q *Queries) SelectUsers(ctx context.Context, limit int32) ([]User, error) {
	rows, err := q.db.Query(ctx, selectUsers, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Name, &i.Timezone, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const selectFriends = `-- name: SelectFriends :many
SELECT u.id, u.name, u.timezone, u.created_at
FROM friendship f
JOIN "user" u ON u.id = f.friend_id
WHERE f.user_id = $1
ORDER BY u.name
`

func (q *Queries) SelectFriends(ctx context.Context, userID pgtype.UUID) ([]User, error) {
	rows, err := q.db.Query(ctx, selectFriends, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Name, &i.Timezone, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const insertUser = `-- name: InsertUser :one
INSERT INTO "user" (id, name, timezone) VALUES ($1, $2, $3)
RETURNING id, name, timezone, created_at
`

type InsertUserParams struct {
	ID       pgtype.UUID
	Name     string
	Timezone string
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (User, error) {
	row := q.db.QueryRow(ctx, insertUser, arg.ID, arg.Name, arg.Timezone)
	var i User
	err := row.Scan(&i.ID, &i.Name, &i.Timezone, &i.CreatedAt)
	return i, err
}

const insertFriendship = `-- name: InsertFriendship :exec
INSERT INTO friendship (user_id, friend_id) VALUES ($1, $2), ($2, $1)
ON CONFLICT DO NOTHING
`

type InsertFriendshipParams struct {
	UserID   pgtype.UUID
	FriendID pgtype.UUID
}

func (q *Queries) InsertFriendship(ctx context.Context, arg InsertFriendshipParams) error {
	_, err := q.db.Exec(ctx, insertFriendship, arg.UserID, arg.FriendID)
	return err
}
