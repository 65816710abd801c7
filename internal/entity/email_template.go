package entity

import (
	"context"
	"errors"
	"time"
)

var ErrTemplateNotFound = errors.New("template not found")

type EmailTemplate struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"updatedAt"`
}

// Templates have no soft-delete lifecycle; Delete removes the row.
type EmailTemplateRepository interface {
	List(ctx context.Context) ([]EmailTemplate, error)
	GetByID(ctx context.Context, id int64) (*EmailTemplate, error)
	Create(ctx context.Context, title, content string) (*EmailTemplate, error)
	Update(ctx context.Context, id int64, title, content string) (*EmailTemplate, error)
	Delete(ctx context.Context, id int64) error
}
