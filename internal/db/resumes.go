package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSlugTaken indicates the requested slug is already used by another resume.
var ErrSlugTaken = errors.New("slug already taken")

// ResumeRecord represents a stored resume: ownership and sharing metadata
// around the document blob.
type ResumeRecord struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug"`
	Document  json.RawMessage `json:"document"`
	Public    bool            `json:"public"`
	Featured  bool            `json:"featured"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ResumePatch holds a partial resume update. Nil fields are left unchanged.
type ResumePatch struct {
	Title    *string
	Slug     *string
	Public   *bool
	Document json.RawMessage
}

// Empty reports whether the patch carries no changes.
func (p ResumePatch) Empty() bool {
	return p.Title == nil && p.Slug == nil && p.Public == nil && p.Document == nil
}

const resumeColumns = `id, owner_id, title, slug, document, public, featured, created_at, updated_at`

func scanResume(row pgx.Row) (*ResumeRecord, error) {
	var rec ResumeRecord
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &rec.Slug, &rec.Document,
		&rec.Public, &rec.Featured, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateResume inserts a new resume record. A duplicate slug returns
// ErrSlugTaken.
func (db *DB) CreateResume(ctx context.Context, ownerID uuid.UUID, title, slug string, document json.RawMessage) (*ResumeRecord, error) {
	rec, err := scanResume(db.pool.QueryRow(ctx,
		`INSERT INTO resumes (owner_id, title, slug, document)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+resumeColumns,
		ownerID, title, slug, document,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return rec, nil
}

// GetResume retrieves a resume owned by the given user. Returns nil, nil when
// not found.
func (db *DB) GetResume(ctx context.Context, ownerID, resumeID uuid.UUID) (*ResumeRecord, error) {
	rec, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1 AND owner_id = $2`,
		resumeID, ownerID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return rec, nil
}

// ListResumesByOwner retrieves all resumes owned by a user, newest first.
func (db *DB) ListResumesByOwner(ctx context.Context, ownerID uuid.UUID) ([]ResumeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE owner_id = $1 ORDER BY updated_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// buildResumeUpdate builds the SET clause and argument list for a partial
// update. The first two placeholders are reserved for the WHERE clause
// (resume ID and owner ID); patch arguments start at $3.
func buildResumeUpdate(patch ResumePatch) (string, []any) {
	set := "updated_at = NOW()"
	args := []any{}
	argNum := 3

	if patch.Title != nil {
		set += fmt.Sprintf(", title = $%d", argNum)
		args = append(args, *patch.Title)
		argNum++
	}
	if patch.Slug != nil {
		set += fmt.Sprintf(", slug = $%d", argNum)
		args = append(args, *patch.Slug)
		argNum++
	}
	if patch.Public != nil {
		set += fmt.Sprintf(", public = $%d", argNum)
		args = append(args, *patch.Public)
		argNum++
	}
	if patch.Document != nil {
		set += fmt.Sprintf(", document = $%d", argNum)
		args = append(args, patch.Document)
	}

	return set, args
}

// UpdateResume applies a partial update to a resume owned by the given user.
// Returns nil, nil when the resume does not exist; ErrSlugTaken when the new
// slug collides with another record.
func (db *DB) UpdateResume(ctx context.Context, ownerID, resumeID uuid.UUID, patch ResumePatch) (*ResumeRecord, error) {
	if patch.Empty() {
		return db.GetResume(ctx, ownerID, resumeID)
	}

	set, patchArgs := buildResumeUpdate(patch)
	args := append([]any{resumeID, ownerID}, patchArgs...)

	rec, err := scanResume(db.pool.QueryRow(ctx,
		`UPDATE resumes SET `+set+` WHERE id = $1 AND owner_id = $2 RETURNING `+resumeColumns,
		args...,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return rec, nil
}

// DeleteResume deletes a resume owned by the given user. Returns false when
// the resume does not exist.
func (db *DB) DeleteResume(ctx context.Context, ownerID, resumeID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND owner_id = $2`,
		resumeID, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SetFeatured marks one resume as the owner's featured resume, clearing the
// flag from every other record in the same transaction so at most one resume
// per owner is ever featured.
func (db *DB) SetFeatured(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET featured = FALSE WHERE owner_id = $1 AND featured`,
		ownerID,
	); err != nil {
		return fmt.Errorf("failed to clear featured flag: %w", err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE resumes SET featured = TRUE, updated_at = NOW() WHERE id = $1 AND owner_id = $2`,
		resumeID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to set featured flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPublicBySlug retrieves a resume by slug for the public read view.
// Returns nil, nil both when the slug does not exist and when the record is
// private, so callers cannot distinguish the two.
func (db *DB) GetPublicBySlug(ctx context.Context, slug string) (*ResumeRecord, error) {
	rec, err := scanResume(db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE slug = $1 AND public`,
		slug,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume by slug: %w", err)
	}
	return rec, nil
}
