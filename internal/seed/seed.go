// Package seed loads a JSON catalog fixture into the database.
//
// Every row is matched by its natural key (category and product name, user email), so
// running the same fixture twice leaves the tables unchanged.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_catalog/internal/db"
	"github.com/Skotchmaster/shop_catalog/internal/hash"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
)

type Product struct {
	ID          uint    `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
}

type Category struct {
	ID       uint      `json:"id,omitempty"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserName string `json:"userName"`
}

type Fixture struct {
	Categories []Category `json:"categories"`
	Users      []User     `json:"users"`
}

type Stats struct {
	Categories int
	Products   int
	Users      int
}

func Decode(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("seed: decode fixture: %w", err)
	}
	return f, nil
}

// Apply writes f inside a single transaction.
func Apply(ctx context.Context, gdb *gorm.DB, f Fixture) (Stats, error) {
	l := logging.With(ctx, "component", "seed")

	var st Stats
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repo.New(tx)

		for _, c := range f.Categories {
			if c.Name == "" {
				return fmt.Errorf("seed: category without name")
			}
			cat := &models.Category{ID: c.ID, Name: c.Name}
			if err := r.FirstOrCreateCategory(ctx, cat); err != nil {
				return fmt.Errorf("seed: category %q: %w", c.Name, err)
			}
			st.Categories++

			for _, p := range c.Products {
				prod := &models.Product{
					ID:          p.ID,
					Name:        p.Name,
					Description: p.Description,
					Price:       p.Price,
					Image:       p.Image,
					Stock:       p.Stock,
					CategoryID:  cat.ID,
				}
				if err := r.FirstOrCreateProduct(ctx, prod); err != nil {
					return fmt.Errorf("seed: product %q: %w", p.Name, err)
				}
				st.Products++
			}
		}

		for _, u := range f.Users {
			pw, err := hash.HashPassword(u.Password)
			if err != nil {
				return fmt.Errorf("seed: user %q: %w", u.Email, err)
			}
			user := &models.User{Email: u.Email, Password: pw, UserName: u.UserName}
			if err := r.FirstOrCreateUser(ctx, user); err != nil {
				return fmt.Errorf("seed: user %q: %w", u.Email, err)
			}
			st.Users++
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	l.Info().Int("categories", st.Categories).Int("products", st.Products).Int("users", st.Users).Msg("seed_applied")
	return st, nil
}

var sequencedTables = []string{"users", "categories", "products"}

// ResetSequences moves postgres id sequences past the highest id, which explicit
// fixture ids leave behind. Other drivers need nothing.
func ResetSequences(ctx context.Context, gdb *gorm.DB, driver string) error {
	if driver != db.DriverPostgres && driver != "" {
		return nil
	}
	for _, table := range sequencedTables {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence(%s, 'id'), COALESCE((SELECT MAX(id) FROM %s), 0) + 1, false)",
			pq.QuoteLiteral(table), pq.QuoteIdentifier(table),
		)
		if err := gdb.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("seed: reset %s sequence: %w", table, err)
		}
	}
	return nil
}
