// Package services holds the moderation use cases served by the HTTP layer.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamadmin/internal/common"
	"github.com/dmitrijs2005/teamadmin/internal/dbx"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
	"github.com/dmitrijs2005/teamadmin/internal/server/repositories/repomanager"
)

// MaxPageLimit caps a single page of the pending feed.
const MaxPageLimit = 500

// Page selects a window of the pending feed. The zero Page means "everything".
// A cursor without a limit reads at most MaxPageLimit rows past it.
type Page struct {
	AfterID int64
	Limit   int
}

func (p Page) bounded() bool {
	return p.Limit > 0 || p.AfterID > 0
}

func (p Page) limit() int {
	if p.Limit <= 0 || p.Limit > MaxPageLimit {
		return MaxPageLimit
	}
	return p.Limit
}

type ModerationService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewModerationService(db dbx.DBTX, m repomanager.RepositoryManager) *ModerationService {
	return &ModerationService{db: db, repomanager: m}
}

// PendingAds lists ads still waiting for a decision.
func (s *ModerationService) PendingAds(ctx context.Context, page Page) ([]models.Ad, error) {
	repo := s.repomanager.Ads(s.db)

	var (
		result []models.Ad
		err    error
	)
	if page.bounded() {
		result, err = repo.ListPendingPage(ctx, page.AfterID, page.limit())
	} else {
		result, err = repo.ListPending(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing pending ads: %w", err)
	}

	return result, nil
}

// VerifyAd approves the ad with the given id.
func (s *ModerationService) VerifyAd(ctx context.Context, id int64) (*models.Ad, error) {
	return s.setAdVerification(ctx, id, models.Approved)
}

// RejectAd rejects the ad with the given id.
func (s *ModerationService) RejectAd(ctx context.Context, id int64) (*models.Ad, error) {
	return s.setAdVerification(ctx, id, models.Rejected)
}

func (s *ModerationService) setAdVerification(ctx context.Context, id int64, v models.Verification) (*models.Ad, error) {
	ad, err := s.repomanager.Ads(s.db).SetVerification(ctx, id, v)
	if err != nil {
		return nil, classify("ad", id, v, err)
	}
	return ad, nil
}

// PendingUsers lists user profiles still waiting for a decision.
func (s *ModerationService) PendingUsers(ctx context.Context, page Page) ([]models.User, error) {
	repo := s.repomanager.Users(s.db)

	var (
		result []models.User
		err    error
	)
	if page.bounded() {
		result, err = repo.ListPendingPage(ctx, page.AfterID, page.limit())
	} else {
		result, err = repo.ListPending(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing pending users: %w", err)
	}

	return result, nil
}

func (s *ModerationService) VerifyUser(ctx context.Context, id int64) (*models.User, error) {
	return s.setUserVerification(ctx, id, models.Approved)
}

func (s *ModerationService) RejectUser(ctx context.Context, id int64) (*models.User, error) {
	return s.setUserVerification(ctx, id, models.Rejected)
}

func (s *ModerationService) setUserVerification(ctx context.Context, id int64, v models.Verification) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).SetVerification(ctx, id, v)
	if err != nil {
		return nil, classify("user", id, v, err)
	}
	return u, nil
}

// classify keeps ErrorNotFound matchable for the transport layer. Anything
// else becomes ErrorInternal with the cause still attached.
func classify(kind string, id int64, v models.Verification, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, common.ErrorNotFound)
	}
	return fmt.Errorf("%w: error setting %s %d to %s: %w", common.ErrorInternal, kind, id, v, err)
}
