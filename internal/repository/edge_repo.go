package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tw1zzzzz/CisBot2/internal/db"
)

// EdgeRepository provides data access methods for the relationship edges
// (likes, skips, blocks) between users.
type EdgeRepository struct {
	db *gorm.DB
}

// NewEdgeRepository creates a new repository bound to the given DB connection.
func NewEdgeRepository(database *gorm.DB) *EdgeRepository {
	return &EdgeRepository{db: database}
}

// CreateEdge inserts a directed edge. Idempotent: re-inserting an existing
// (from, to, kind) triple is a no-op, not an error. The returned flag
// reports whether a row was actually inserted, so callers can distinguish
// a fresh edge from a repeat.
//
// Example:
//
//	created, err := repo.CreateEdge(ctx, 1, 2, db.EdgeLike) // user 1 liked user 2
func (r *EdgeRepository) CreateEdge(ctx context.Context, from, to int64, kind db.EdgeKind) (bool, error) {
	edge := db.Edge{
		FromID: from,
		ToID:   to,
		Kind:   kind,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// TargetsOf returns the ids a user has pointed an edge of the given kind
// at, e.g. everyone the user already liked.
func (r *EdgeRepository) TargetsOf(ctx context.Context, from int64, kind db.EdgeKind) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&db.Edge{}).
		Where("from_id = ? AND kind = ?", from, kind).
		Pluck("to_id", &ids).Error
	return ids, err
}

// SourcesOf returns the ids that pointed an edge of the given kind at a
// user, e.g. everyone who blocked the user.
func (r *EdgeRepository) SourcesOf(ctx context.Context, to int64, kind db.EdgeKind) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&db.Edge{}).
		Where("to_id = ? AND kind = ?", to, kind).
		Pluck("from_id", &ids).Error
	return ids, err
}

// HasEdge checks whether a directed edge exists. Used for the reverse-like
// lookup when a like is recorded.
func (r *EdgeRepository) HasEdge(ctx context.Context, from, to int64, kind db.EdgeKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Edge{}).
		Where("from_id = ? AND to_id = ? AND kind = ?", from, to, kind).
		Count(&count).Error
	return count > 0, err
}

// CountIncomingLikes returns how many users liked the given user. Used in
// conjunction with the Redis counter (DB is the fallback).
func (r *EdgeRepository) CountIncomingLikes(ctx context.Context, to int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Edge{}).
		Where("to_id = ? AND kind = ?", to, db.EdgeLike).
		Count(&count).Error
	return count, err
}
