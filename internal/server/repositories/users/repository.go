package users

import (
	"context"

	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

type Repository interface {
	ListPending(ctx context.Context) ([]models.User, error)
	ListPendingPage(ctx context.Context, afterID int64, limit int) ([]models.User, error)
	SetVerification(ctx context.Context, id int64, v models.Verification) (*models.User, error)
}
