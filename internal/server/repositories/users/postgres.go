// Package users stores registered member profiles in the "users" table.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamadmin/internal/common"
	"github.com/dmitrijs2005/teamadmin/internal/dbx"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

const columns = `id, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''),
		 COALESCE(phone, ''), COALESCE(instagram_account, ''), COALESCE(image_url, ''),
		 verified, COALESCE(university, ''), COALESCE(gender, '')`

const (
	listPendingQuery = `SELECT ` + columns + ` FROM users
		 WHERE verified IS NULL
		 ORDER BY id`

	listPendingPageQuery = `SELECT ` + columns + ` FROM users
		 WHERE verified IS NULL AND id > $1
		 ORDER BY id
		 LIMIT $2`

	setVerificationQuery = `UPDATE users SET verified = $2
		 WHERE id = $1
		 RETURNING ` + columns
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPending(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, listPendingQuery)
}

func (r *PostgresRepository) ListPendingPage(ctx context.Context, afterID int64, limit int) ([]models.User, error) {
	return r.list(ctx, listPendingPageQuery, afterID, limit)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) SetVerification(ctx context.Context, id int64, v models.Verification) (*models.User, error) {
	if !v.Decided() {
		return nil, common.ErrorInvalidVerification
	}

	u, err := scan(r.db.QueryRowContext(ctx, setVerificationQuery, id, v == models.Approved))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.User, error) {
	u := &models.User{}
	err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.InstagramAccount,
		&u.ImageURL, &u.Verified, &u.University, &u.Gender)
	if err != nil {
		return nil, err
	}
	return u, nil
}
