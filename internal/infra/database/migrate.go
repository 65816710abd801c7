package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// duplicate_object, raised when the enum type already exists.
const pqDuplicateObject = "42710"

var schema = []string{
	`CREATE TYPE "LeadStatus" AS ENUM ('HOT', 'PROGRESS', 'DISQUALIFIED')`,
	`CREATE TABLE IF NOT EXISTS "Lead" (
		"id"             SERIAL PRIMARY KEY,
		"name"           TEXT NOT NULL,
		"country"        TEXT,
		"phoneNumber"    TEXT,
		"whatsappNumber" TEXT,
		"dealProfile"    TEXT,
		"website"        TEXT,
		"email"          TEXT,
		"notes"          TEXT,
		"status"         "LeadStatus" NOT NULL DEFAULT 'HOT',
		"deleted"        BOOLEAN NOT NULL DEFAULT false,
		"createdAt"      TIMESTAMP(3) NOT NULL DEFAULT NOW(),
		"updatedAt"      TIMESTAMP(3) NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS "Lead_deleted_createdAt_idx" ON "Lead" ("deleted", "createdAt")`,
	`CREATE TABLE IF NOT EXISTS "EmailTemplate" (
		"id"        SERIAL PRIMARY KEY,
		"title"     TEXT NOT NULL,
		"content"   TEXT NOT NULL,
		"createdAt" TIMESTAMP(3) NOT NULL DEFAULT NOW(),
		"updatedAt" TIMESTAMP(3) NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the enum and tables when they are missing. It is safe to
// run against a database that already has the schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateObject {
				continue
			}
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
