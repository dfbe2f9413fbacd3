package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/sources/memory"
)

// Seed inserts catalog records, leaving rows with existing ids untouched.
func Seed(ctx context.Context, db *bun.DB, catalog memory.Catalog) error {
	now := time.Now().UTC()
	seedTime := func(position int) time.Time {
		return now.Add(-time.Duration(position) * time.Minute)
	}

	categories := make([]categoryModel, 0, len(catalog.Categories))
	for i, c := range catalog.Categories {
		categories = append(categories, categoryModel{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Color:       c.Color,
			CreatedAt:   seedTime(i),
		})
	}

	authors := make([]authorModel, 0, len(catalog.Authors))
	for i, a := range catalog.Authors {
		authors = append(authors, authorModel{
			ID:        a.ID,
			Name:      a.Name,
			Slug:      a.Slug,
			Avatar:    a.Avatar,
			Bio:       a.Bio,
			Role:      a.Role,
			CreatedAt: seedTime(i),
		})
	}

	articles := make([]articleModel, 0, len(catalog.Articles))
	for _, a := range catalog.Articles {
		model := articleModel{
			ID:            a.ID,
			Title:         a.Title,
			Slug:          a.Slug,
			Excerpt:       a.Excerpt,
			FeaturedImage: a.FeaturedImage,
			PublishedAt:   a.PublishedAt,
			UpdatedAt:     a.UpdatedAt,
			IsBreaking:    a.IsBreaking,
			IsFeatured:    a.IsFeatured,
			ReadTime:      a.ReadTime,
			Tags:          a.Tags,
		}
		if content, ok := a.Content.(string); ok && content != "" {
			model.Content = &content
		}
		if a.Category != nil && a.Category.ID != "" {
			id := a.Category.ID
			model.CategoryID = &id
		}
		if a.Author != nil && a.Author.ID != "" {
			id := a.Author.ID
			model.AuthorID = &id
		}
		articles = append(articles, model)
	}

	breaking := make([]breakingNewsModel, 0, len(catalog.BreakingNews))
	for _, b := range catalog.BreakingNews {
		breaking = append(breaking, breakingNewsModel{
			ID:        b.ID,
			Headline:  b.Headline,
			URL:       b.URL,
			Timestamp: b.Timestamp,
		})
	}

	ads := make([]advertisementModel, 0, len(catalog.Advertisements))
	for i, ad := range catalog.Advertisements {
		ads = append(ads, advertisementModel{
			ID:        ad.ID,
			Name:      ad.Name,
			Image:     ad.Image,
			URL:       ad.URL,
			Position:  string(ad.Position),
			IsActive:  ad.IsActive,
			StartDate: ad.StartDate,
			EndDate:   ad.EndDate,
			CreatedAt: seedTime(i),
		})
	}

	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := insertMissing(ctx, tx, categories); err != nil {
			return err
		}
		if err := insertMissing(ctx, tx, authors); err != nil {
			return err
		}
		if err := insertMissing(ctx, tx, articles); err != nil {
			return err
		}
		if err := insertMissing(ctx, tx, breaking); err != nil {
			return err
		}
		return insertMissing(ctx, tx, ads)
	})
}

func insertMissing[T any](ctx context.Context, tx bun.Tx, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if _, err := tx.NewInsert().Model(&rows).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("database: seed: %w", err)
	}
	return nil
}
