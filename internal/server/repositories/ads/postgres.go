// Package ads stores event submissions in the "ads" table.
package ads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamadmin/internal/common"
	"github.com/dmitrijs2005/teamadmin/internal/dbx"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

// Legacy rows may carry NULLs in the descriptive columns; they read back as zero values.
const columns = `id, COALESCE(title, ''), COALESCE(description, ''), created_at,
		 COALESCE(min, 0), COALESCE(max, 0), "date", COALESCE("time"::text, ''),
		 verified, COALESCE(available, false), COALESCE(info, '')`

const (
	listPendingQuery = `SELECT ` + columns + ` FROM ads
		 WHERE verified IS NULL
		 ORDER BY id`

	listPendingPageQuery = `SELECT ` + columns + ` FROM ads
		 WHERE verified IS NULL AND id > $1
		 ORDER BY id
		 LIMIT $2`

	setVerificationQuery = `UPDATE ads SET verified = $2
		 WHERE id = $1
		 RETURNING ` + columns
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListPending returns every ad nobody has moderated yet, oldest first.
func (r *PostgresRepository) ListPending(ctx context.Context) ([]models.Ad, error) {
	return r.list(ctx, listPendingQuery)
}

// ListPendingPage returns at most limit pending ads with id greater than afterID.
func (r *PostgresRepository) ListPendingPage(ctx context.Context, afterID int64, limit int) ([]models.Ad, error) {
	return r.list(ctx, listPendingPageQuery, afterID, limit)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Ad, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Ad, 0)
	for rows.Next() {
		ad, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// SetVerification records the moderator's decision and returns the updated row.
// Repeating the same decision is harmless.
func (r *PostgresRepository) SetVerification(ctx context.Context, id int64, v models.Verification) (*models.Ad, error) {
	if !v.Decided() {
		return nil, common.ErrorInvalidVerification
	}

	ad, err := scan(r.db.QueryRowContext(ctx, setVerificationQuery, id, v == models.Approved))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ad, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (*models.Ad, error) {
	ad := &models.Ad{}
	err := s.Scan(&ad.ID, &ad.Title, &ad.Description, &ad.CreatedAt, &ad.Min, &ad.Max,
		&ad.Date, &ad.Time, &ad.Verified, &ad.Available, &ad.Info)
	if err != nil {
		return nil, err
	}
	return ad, nil
}
