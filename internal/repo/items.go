package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shop_catalog/internal/models"
)

var userProductConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
	DoNothing: true,
}

// insertIfAbsent reports whether a row was written; an existing (user, product) pair is left untouched.
func (r *GormRepo) insertIfAbsent(ctx context.Context, row any) (bool, error) {
	res := r.DB.WithContext(ctx).Clauses(userProductConflict).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// deleteScoped removes one row by id, restricted to userID when it is set.
func (r *GormRepo) deleteScoped(ctx context.Context, model any, id uint, userID *uint) error {
	tx := r.DB.WithContext(ctx).Where("id = ?", id)
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}
	res := tx.Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) countForUser(ctx context.Context, model any, userID uint) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(model).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GormRepo) CreateBoughtIfAbsent(ctx context.Context, b *models.Bought) (bool, error) {
	return r.insertIfAbsent(ctx, b)
}

func (r *GormRepo) CreateWishlistIfAbsent(ctx context.Context, w *models.Wishlist) (bool, error) {
	return r.insertIfAbsent(ctx, w)
}

func (r *GormRepo) BoughtByID(ctx context.Context, id uint) (*models.Bought, error) {
	var b models.Bought
	if err := r.DB.WithContext(ctx).Preload("Product").Preload("User").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepo) ListBought(ctx context.Context) ([]models.Bought, error) {
	items := make([]models.Bought, 0)
	if err := r.DB.WithContext(ctx).Preload("Product").Preload("User").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBought loads the row inside a transaction, applies fn and saves it.
func (r *GormRepo) UpdateBought(ctx context.Context, id uint, fn func(*models.Bought) error) (*models.Bought, error) {
	var out *models.Bought
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Bought
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}
		if err := fn(&b); err != nil {
			return err
		}
		b.ID = id
		if err := tx.Omit(clause.Associations).Save(&b).Error; err != nil {
			return err
		}
		if err := tx.Preload("Product").Preload("User").First(&b, id).Error; err != nil {
			return err
		}
		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GormRepo) DeleteBought(ctx context.Context, id uint, userID *uint) error {
	return r.deleteScoped(ctx, &models.Bought{}, id, userID)
}

func (r *GormRepo) DeleteWishlist(ctx context.Context, id uint, userID *uint) error {
	return r.deleteScoped(ctx, &models.Wishlist{}, id, userID)
}

func (r *GormRepo) CountBought(ctx context.Context, userID uint) (int64, error) {
	return r.countForUser(ctx, &models.Bought{}, userID)
}

func (r *GormRepo) CountWishlist(ctx context.Context, userID uint) (int64, error) {
	return r.countForUser(ctx, &models.Wishlist{}, userID)
}
