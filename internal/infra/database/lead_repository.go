package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/leadboard/internal/entity"
)

const leadColumns = `"id", "name", "country", "phoneNumber", "whatsappNumber", "website", "email", "notes", "status", "deleted", "createdAt", "updatedAt"`

type LeadRepository struct {
	DB *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) List(ctx context.Context, includeDeleted bool) ([]entity.Lead, error) {
	// The deleted view is sorted by when the lead was removed.
	orderBy := `"createdAt" DESC, "id" DESC`
	if includeDeleted {
		orderBy = `"updatedAt" DESC, "id" DESC`
	}
	query := `SELECT ` + leadColumns + ` FROM "Lead" WHERE "deleted" = $1 ORDER BY ` + orderBy

	leads := []entity.Lead{}
	if err := r.DB.SelectContext(ctx, &leads, query, includeDeleted); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM "Lead" WHERE "id" = $1`

	var lead entity.Lead
	if err := r.DB.GetContext(ctx, &lead, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead %d: %w", id, err)
	}
	return &lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, in entity.NewLead) (*entity.Lead, error) {
	query := `
		INSERT INTO "Lead" (
			"name", "country", "phoneNumber", "whatsappNumber", "website", "email", "notes",
			"status", "createdAt", "updatedAt"
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8::"LeadStatus", NOW(), NOW()
		)
		RETURNING ` + leadColumns

	var lead entity.Lead
	err := r.DB.GetContext(ctx, &lead, query,
		in.Name,
		in.Country,
		in.PhoneNumber,
		in.WhatsappNumber,
		in.Website,
		in.Email,
		in.Notes,
		in.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, id int64, f entity.UpdateLeadFields) (*entity.Lead, error) {
	query := `
		UPDATE "Lead"
		SET "name" = $1,
			"country" = $2,
			"status" = $3::"LeadStatus",
			"phoneNumber" = $4,
			"whatsappNumber" = $5,
			"website" = $6,
			"notes" = $7,
			"updatedAt" = NOW()
		WHERE "id" = $8
		RETURNING ` + leadColumns

	var lead entity.Lead
	err := r.DB.GetContext(ctx, &lead, query,
		f.Name,
		f.Country,
		f.Status,
		f.PhoneNumber,
		f.WhatsappNumber,
		f.Website,
		f.Notes,
		id,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead %d: %w", id, err)
	}
	return &lead, nil
}

func (r *LeadRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, true)
}

func (r *LeadRepository) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, id, false)
}

// setDeleted flips the flag in one statement; a missing row is detected by
// the empty RETURNING set rather than a prior read.
func (r *LeadRepository) setDeleted(ctx context.Context, id int64, deleted bool) error {
	query := `UPDATE "Lead" SET "deleted" = $1, "updatedAt" = NOW() WHERE "id" = $2 RETURNING "id"`

	var returned int64
	if err := r.DB.QueryRowxContext(ctx, query, deleted, id).Scan(&returned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.ErrLeadNotFound
		}
		return fmt.Errorf("set deleted=%t on lead %d: %w", deleted, id, err)
	}
	return nil
}

func (r *LeadRepository) Stats(ctx context.Context) (entity.LeadStats, error) {
	query := `SELECT "status", "deleted", COUNT(*) AS "count" FROM "Lead" GROUP BY "status", "deleted"`

	var rows []struct {
		Status  entity.LeadStatus `db:"status"`
		Deleted bool              `db:"deleted"`
		Count   int               `db:"count"`
	}
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return entity.LeadStats{}, fmt.Errorf("lead stats: %w", err)
	}

	stats := entity.LeadStats{ActiveByStatus: make(map[entity.LeadStatus]int, len(entity.StorageStatuses))}
	for _, s := range entity.StorageStatuses {
		stats.ActiveByStatus[s] = 0
	}
	for _, row := range rows {
		if row.Deleted {
			stats.Deleted += row.Count
			continue
		}
		stats.ActiveByStatus[row.Status] += row.Count
	}
	return stats, nil
}
