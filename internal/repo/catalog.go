package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/util"
)

// Sort is an already validated ORDER BY column.
type Sort struct {
	Column string
	Desc   bool
}

type ProductQuery struct {
	CategoryID *uint
	Sort       *Sort
	Offset     int
	Limit      int
}

func likePattern(s string) string {
	return "%" + util.EscapeLike(s) + "%"
}

func (r *GormRepo) ListProductsPage(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Product{}).Preload("Category")
	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}
	if q.Sort != nil {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Column}, Desc: q.Sort.Desc})
	}

	items := make([]models.Product, 0, q.Limit)
	if err := tx.Offset(q.Offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ProductExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, 0)
	if err := r.DB.WithContext(ctx).Preload("Category").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) productSearchScope(name string, categoryID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("name LIKE ? ESCAPE '!'", likePattern(name))
		if categoryID != nil {
			db = db.Where("category_id = ?", *categoryID)
		}
		return db
	}
}

// SearchProducts matches name as a substring, optionally within one category.
func (r *GormRepo) SearchProducts(ctx context.Context, name string, categoryID *uint, offset, limit int) (int64, []models.Product, error) {
	scope := r.productSearchScope(name, categoryID)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Scopes(scope).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(scope).
		Preload("Category").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) CategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) CategoryWithProducts(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.DB.WithContext(ctx).Preload("Products").Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	items := make([]models.Category, 0)
	if err := r.DB.WithContext(ctx).Preload("Products").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) SearchCategories(ctx context.Context, name string, offset, limit int) (int64, []models.Category, error) {
	where := "name LIKE ? ESCAPE '!'"
	pattern := likePattern(name)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Category{}).Where(where, pattern).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Category, 0, limit)
	if err := r.DB.WithContext(ctx).
		Preload("Products").
		Where(where, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// FirstOrCreateCategory is used by the seeder.
func (r *GormRepo) FirstOrCreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.WithContext(ctx).Where("name = ?", c.Name).FirstOrCreate(c).Error
}

func (r *GormRepo) FirstOrCreateProduct(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Where("name = ?", p.Name).FirstOrCreate(p).Error
}

// ProductsByIDs returns products in the order of ids, skipping ids that no longer exist.
func (r *GormRepo) ProductsByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	out := make([]models.Product, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var found []models.Product
	if err := r.DB.WithContext(ctx).Preload("Category").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
