package db

import (
	"time"

	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
	"github.com/Tw1zzzzz/CisBot2/internal/rank"
)

// Moderation states for a profile. Only approved profiles can search or
// appear as candidates.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// User table. IDs are Telegram account IDs assigned by the bot layer, not
// auto-incremented here.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false"`
	Username  string    `gorm:"size:64"`
	FirstName string    `gorm:"size:128;not null"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Profile is a player's teammate-finder card. Exactly one of RankTier /
// FaceitElo is set on a scoreable profile; both resolve to a common ELO
// axis through the rank package.
//
// Set-valued attributes (maps, playtime slots, categories) are stored as
// JSON columns via gorm's serializer.
type Profile struct {
	UserID        int64    `gorm:"primaryKey;autoIncrement:false"`
	GameNickname  string   `gorm:"size:64;not null"`
	RankTier      *string  `gorm:"size:64"`
	FaceitElo     *int
	FaceitURL     string   `gorm:"size:255"`
	Role          string   `gorm:"size:32;not null"`
	FavoriteMaps  []string `gorm:"serializer:json;type:text"`
	PlaytimeSlots []string `gorm:"serializer:json;type:text"`
	Categories    []string `gorm:"serializer:json;type:text"`
	Description   string   `gorm:"type:text"`

	ModerationStatus string `gorm:"size:16;not null;default:pending;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

// IsApproved reports whether the profile passed moderation.
func (p *Profile) IsApproved() bool { return p.ModerationStatus == ModerationApproved }

// RankValue resolves the stored rank columns into the tagged rank variant.
// When both representations are present the numeric ELO wins, it is the
// finer-grained signal. A profile missing both is unscoreable.
func (p *Profile) RankValue() (rank.Value, error) {
	switch {
	case p.FaceitElo != nil:
		return rank.Elo(*p.FaceitElo), nil
	case p.RankTier != nil && *p.RankTier != "":
		return rank.Tier(*p.RankTier), nil
	default:
		return rank.Value{}, svcErr.Validationf("profile %d has no rank", p.UserID)
	}
}

// EdgeKind is the relationship edge type.
type EdgeKind string

const (
	EdgeLike  EdgeKind = "like"
	EdgeSkip  EdgeKind = "skip"
	EdgeBlock EdgeKind = "block"
)

// Edge represents a directed like/skip/block from one user to another.
//
// Composite PK: (FromID, ToID, Kind)
//   - At most one edge of a given kind per ordered pair.
//   - Edges are insert-only; duplicates are ignored, never errors.
//
// Index:
//   - idx_edges_from_kind(from_id, kind) serves per-user exclusion-set
//     queries.
type Edge struct {
	FromID    int64     `gorm:"primaryKey;autoIncrement:false;index:idx_edges_from_kind,priority:1"`
	ToID      int64     `gorm:"primaryKey;autoIncrement:false"`
	Kind      EdgeKind  `gorm:"primaryKey;size:8;index:idx_edges_from_kind,priority:2"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Match is the undirected pairing created when both like directions exist.
// The pair is canonicalized (UserAID < UserBID) and guarded by a unique
// index, which is what makes concurrent reciprocal likes race-safe.
// A later block never deactivates a match; Active is flipped only by the
// application layer.
type Match struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserAID   int64     `gorm:"not null;uniqueIndex:idx_matches_pair,priority:1"`
	UserBID   int64     `gorm:"not null;uniqueIndex:idx_matches_pair,priority:2"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// PairKey returns the canonical ordering for a match pair.
func PairKey(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}
