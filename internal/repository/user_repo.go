package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecommerce_backend/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, password_hash, email, created_at) VALUES (?, ?, ?, ?)`
	selectUserSQL = `SELECT user_id, username, password_hash, email, created_at FROM users`

	selectUserByIDSQL       = selectUserSQL + ` WHERE user_id = ?`
	selectUserByUsernameSQL = selectUserSQL + ` WHERE username = ?`

	updateUserSQL = `UPDATE users SET username = ?, password_hash = ?, email = ? WHERE user_id = ?`
	deleteUserSQL = `DELETE FROM users WHERE user_id = ?`
)

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return u, err
}

// Create inserts a new user and returns the stored row.
func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.Email, time.Now().UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return r.GetByID(ctx, int(lastID))
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUserSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
}

// Update replaces all mutable fields of the user row.
func (r *UserRepository) Update(ctx context.Context, u models.User) (models.User, error) {
	res, err := r.db.ExecContext(ctx, updateUserSQL, u.Username, u.PasswordHash, u.Email, u.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", u.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.User{}, ErrNotFound
	}
	return r.GetByID(ctx, u.ID)
}

// Delete removes the user row and returns the row as it was stored.
func (r *UserRepository) Delete(ctx context.Context, id int) (models.User, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return models.User{}, fmt.Errorf("delete user %d: %w", id, err)
	}
	return u, nil
}
