package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/lifeos-server/internal/model"
)

var _ model.CapsuleStore = (*CapsuleRepository)(nil)

const capsuleColumns = `id, owner_id, content, unlock_at, created_at,
			  attachment_key, attachment_name, attachment_content_type, attachment_size`

type CapsuleRepository struct {
	db DBTX
}

func NewCapsuleRepository(db DBTX) *CapsuleRepository {
	return &CapsuleRepository{
		db: db,
	}
}

func (r *CapsuleRepository) Create(ctx context.Context, capsule model.Capsule) (model.Capsule, error) {
	query := `INSERT INTO capsules (` + capsuleColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING ` + capsuleColumns

	var key, name, contentType sql.NullString
	var size sql.NullInt64
	if a := capsule.Attachment; a != nil {
		key = sql.NullString{String: a.Key, Valid: true}
		name = sql.NullString{String: a.Name, Valid: true}
		contentType = sql.NullString{String: a.ContentType, Valid: true}
		size = sql.NullInt64{Int64: a.Size, Valid: true}
	}

	saved, err := scanCapsule(r.db.QueryRowContext(ctx, query,
		capsule.ID, capsule.OwnerID, capsule.Content, capsule.UnlockAt, capsule.CreatedAt,
		key, name, contentType, size,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Capsule{}, model.ErrConflict
		}
		return model.Capsule{}, fmt.Errorf("failed to create capsule: %w", err)
	}

	return saved, nil
}

func (r *CapsuleRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Capsule, error) {
	query := `SELECT ` + capsuleColumns + `
			  FROM capsules WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query capsules: %w", err)
	}
	defer rows.Close()

	var capsules []model.Capsule
	for rows.Next() {
		c, err := scanCapsule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan capsule: %w", err)
		}
		capsules = append(capsules, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate capsules: %w", err)
	}

	return capsules, nil
}

func (r *CapsuleRepository) GetOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	query := `SELECT ` + capsuleColumns + `
			  FROM capsules WHERE id = $1 AND owner_id = $2`

	c, err := scanCapsule(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Capsule{}, model.ErrNotFound
		}
		return model.Capsule{}, fmt.Errorf("failed to get capsule: %w", err)
	}

	return c, nil
}

func (r *CapsuleRepository) DeleteOwned(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (model.Capsule, error) {
	query := `DELETE FROM capsules WHERE id = $1 AND owner_id = $2
			  RETURNING ` + capsuleColumns

	c, err := scanCapsule(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Capsule{}, model.ErrNotFound
		}
		return model.Capsule{}, fmt.Errorf("failed to delete capsule: %w", err)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCapsule(row rowScanner) (model.Capsule, error) {
	var c model.Capsule
	var key, name, contentType sql.NullString
	var size sql.NullInt64

	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Content, &c.UnlockAt, &c.CreatedAt,
		&key, &name, &contentType, &size,
	)
	if err != nil {
		return model.Capsule{}, err
	}

	if key.Valid {
		c.Attachment = &model.Attachment{
			Key:         key.String,
			Name:        name.String,
			ContentType: contentType.String,
			Size:        size.Int64,
		}
	}

	return c, nil
}
