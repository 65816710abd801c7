package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/leadboard/internal/entity"
)

const templateColumns = `"id", "title", "content", "createdAt", "updatedAt"`

type EmailTemplateRepository struct {
	DB *sqlx.DB
}

func NewEmailTemplateRepository(db *sqlx.DB) *EmailTemplateRepository {
	return &EmailTemplateRepository{DB: db}
}

func (r *EmailTemplateRepository) List(ctx context.Context) ([]entity.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM "EmailTemplate" ORDER BY "createdAt" DESC, "id" DESC`

	templates := []entity.EmailTemplate{}
	if err := r.DB.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (r *EmailTemplateRepository) GetByID(ctx context.Context, id int64) (*entity.EmailTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM "EmailTemplate" WHERE "id" = $1`

	var t entity.EmailTemplate
	if err := r.DB.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template %d: %w", id, err)
	}
	return &t, nil
}

func (r *EmailTemplateRepository) Create(ctx context.Context, title, content string) (*entity.EmailTemplate, error) {
	query := `INSERT INTO "EmailTemplate" ("title", "content", "createdAt", "updatedAt") VALUES ($1, $2, NOW(), NOW()) RETURNING ` + templateColumns

	var t entity.EmailTemplate
	if err := r.DB.GetContext(ctx, &t, query, title, content); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return &t, nil
}

func (r *EmailTemplateRepository) Update(ctx context.Context, id int64, title, content string) (*entity.EmailTemplate, error) {
	query := `UPDATE "EmailTemplate" SET "title" = $1, "content" = $2, "updatedAt" = NOW() WHERE "id" = $3 RETURNING ` + templateColumns

	var t entity.EmailTemplate
	if err := r.DB.GetContext(ctx, &t, query, title, content, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("update template %d: %w", id, err)
	}
	return &t, nil
}

func (r *EmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM "EmailTemplate" WHERE "id" = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}
	if n == 0 {
		return entity.ErrTemplateNotFound
	}
	return nil
}
