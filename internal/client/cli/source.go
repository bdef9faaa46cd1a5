package cli

import (
	"context"

	"github.com/dmitrijs2005/teamadmin/internal/client/api"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
)

type adSource struct {
	client *api.Client
}

func (s adSource) List(ctx context.Context) ([]models.Ad, error) {
	return s.client.ListAds(ctx)
}

func (s adSource) Verify(ctx context.Context, id int64) (string, error) {
	_, err := s.client.VerifyAd(ctx, id)
	return "", err
}

func (s adSource) Reject(ctx context.Context, id int64) (string, error) {
	_, err := s.client.RejectAd(ctx, id)
	return "", err
}

type userSource struct {
	client *api.Client
}

func (s userSource) List(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s userSource) Verify(ctx context.Context, id int64) (string, error) {
	_, msg, err := s.client.VerifyUser(ctx, id)
	return msg, err
}

func (s userSource) Reject(ctx context.Context, id int64) (string, error) {
	_, msg, err := s.client.RejectUser(ctx, id)
	return msg, err
}
