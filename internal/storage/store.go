package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/lukman83/brandscope/internal/models"
)

// Store persists brand records and their child collections.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS brands (
		website_url     TEXT PRIMARY KEY,
		is_shopify_like BOOLEAN NOT NULL DEFAULT FALSE,
		about_brand     TEXT,
		fetched_at      VARCHAR(32)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		website_url  TEXT NOT NULL,
		id           BIGINT NOT NULL,
		title        TEXT,
		handle       TEXT,
		url          TEXT,
		vendor       TEXT,
		product_type TEXT,
		tags         TEXT,
		PRIMARY KEY (website_url, id)
	)`,
	`CREATE TABLE IF NOT EXISTS faqs (
		website_url TEXT NOT NULL,
		question    TEXT NOT NULL,
		answer      TEXT NOT NULL
	)`,
}

// InitSchema creates the three relations if absent. Idempotent.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// SaveBrand writes one fetched profile in a single transaction: the brand
// row is upserted by website URL, product rows are inserted or replaced,
// and FAQ rows are inserted unconditionally.
func (s *Store) SaveBrand(ctx context.Context, p *models.BrandProfile) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save brand: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO brands (website_url, is_shopify_like, about_brand, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (website_url) DO UPDATE SET
			is_shopify_like = EXCLUDED.is_shopify_like,
			about_brand     = EXCLUDED.about_brand,
			fetched_at      = EXCLUDED.fetched_at
	`, p.WebsiteURL, p.IsShopifyLike, p.AboutBrand, p.FetchedAt)
	if err != nil {
		return fmt.Errorf("upsert brand %s: %w", p.WebsiteURL, err)
	}

	for _, prod := range p.ProductCatalog {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products (website_url, id, title, handle, url, vendor, product_type, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (website_url, id) DO UPDATE SET
				title        = EXCLUDED.title,
				handle       = EXCLUDED.handle,
				url          = EXCLUDED.url,
				vendor       = EXCLUDED.vendor,
				product_type = EXCLUDED.product_type,
				tags         = EXCLUDED.tags
		`, p.WebsiteURL, prod.ID, prod.Title, prod.Handle, prod.URL, prod.Vendor, prod.ProductType, prod.Tags)
		if err != nil {
			return fmt.Errorf("save product %q for %s: %w", prod.Key(), p.WebsiteURL, err)
		}
	}

	for _, faq := range p.FAQs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO faqs (website_url, question, answer)
			VALUES ($1, $2, $3)
		`, p.WebsiteURL, faq.Question, faq.Answer)
		if err != nil {
			return fmt.Errorf("save faq for %s: %w", p.WebsiteURL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save brand: %w", err)
	}
	return nil
}
