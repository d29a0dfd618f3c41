package service

import (
	"context"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) AllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return users, nil
}

// UserByID returns the user with all nested relations, or nil when missing.
func (s *UserService) UserByID(ctx context.Context, id uint) (*models.UserDetail, error) {
	u, err := s.Repo.UserDetail(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return models.NewUserDetail(u), nil
}

func (s *UserService) BoughtCount(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, apperr.Validation(MsgUserIDRequired)
	}
	n, err := s.Repo.CountBought(ctx, userID)
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}

func (s *UserService) WishlistCount(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, apperr.Validation(MsgUserIDRequired)
	}
	n, err := s.Repo.CountWishlist(ctx, userID)
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}
