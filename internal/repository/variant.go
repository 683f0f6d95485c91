package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/domain"
)

// VariantRepository handles raw variant persistence
type VariantRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

// NewVariantRepository creates a new variant repository
func NewVariantRepository(db *pgxpool.Pool, logger *logrus.Logger) *VariantRepository {
	return &VariantRepository{
		db:  db,
		log: logger,
	}
}

// DeleteByUser removes every stored variant for the given user. Used at the
// start of a fresh upload so re-uploads replace rather than accumulate.
func (r *VariantRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM raw_variants WHERE user_id = $1`

	result, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err,
		}).Error("Failed to delete existing variants")
		return 0, fmt.Errorf("deleting variants for user: %w", err)
	}

	deleted := result.RowsAffected()
	r.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"rows_deleted": deleted,
	}).Info("Cleared existing variants")

	return deleted, nil
}

// BulkInsert stores a batch of variants for the user via COPY and returns the
// number of rows written.
func (r *VariantRepository) BulkInsert(ctx context.Context, userID, dataSource string, variants []domain.RawVariant) (int64, error) {
	if len(variants) == 0 {
		return 0, nil
	}

	rows := make([][]interface{}, len(variants))
	for i, v := range variants {
		rows[i] = []interface{}{userID, v.RSID, v.Genotype, dataSource}
	}

	copied, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"raw_variants"},
		[]string{"user_id", "rsid", "genotype", "data_source"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"user_id":     userID,
			"data_source": dataSource,
			"batch_size":  len(variants),
			"error":       err,
		}).Error("Failed to bulk insert variants")
		return 0, fmt.Errorf("bulk inserting variants: %w", err)
	}

	r.log.WithFields(logrus.Fields{
		"user_id":     userID,
		"data_source": dataSource,
		"rows_copied": copied,
	}).Info("Variant batch stored")

	return copied, nil
}

// CountByUser returns the number of variants currently stored for the user.
func (r *VariantRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM raw_variants WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err,
		}).Error("Failed to count variants")
		return 0, fmt.Errorf("counting variants for user: %w", err)
	}

	return count, nil
}

// GetByUser retrieves stored variants for a user with pagination, ordered by
// insertion.
func (r *VariantRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]domain.RawVariant, error) {
	query := `
		SELECT rsid, genotype
		FROM raw_variants
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err,
		}).Error("Failed to get variants by user")
		return nil, fmt.Errorf("getting variants by user: %w", err)
	}
	defer rows.Close()

	var variants []domain.RawVariant
	for rows.Next() {
		var v domain.RawVariant
		if err := rows.Scan(&v.RSID, &v.Genotype); err != nil {
			return nil, fmt.Errorf("scanning variant row: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variant rows: %w", err)
	}

	return variants, nil
}

var _ domain.VariantStore = (*VariantRepository)(nil)
