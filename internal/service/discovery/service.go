// Package discovery implements the teammate search engine: eligibility
// filtering, compatibility ranking, swipe recording and mutual-match
// resolution. The surrounding bot process calls it with a user id and gets
// back a ranked candidate batch; all conversational state stays with the
// caller.
package discovery

import (
	"context"
	"sort"
	"time"

	"github.com/Tw1zzzzz/CisBot2/internal/app"
	"github.com/Tw1zzzzz/CisBot2/internal/cs2"
	"github.com/Tw1zzzzz/CisBot2/internal/db"
	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
	"github.com/Tw1zzzzz/CisBot2/internal/metrics"
	"github.com/Tw1zzzzz/CisBot2/internal/rank"
	"github.com/Tw1zzzzz/CisBot2/internal/repository"
	"github.com/Tw1zzzzz/CisBot2/internal/scoring"
	"github.com/Tw1zzzzz/CisBot2/internal/utils/pagination"
)

// Filters are the caller-supplied hard filters. They exclude candidates
// outright; they never influence the compatibility score.
type Filters struct {
	// EloFilterID names one of the cs2 ELO ranges ("any" or unknown
	// disables the filter; "top_1000" switches to leaderboard sampling).
	EloFilterID string
	// Categories keeps only candidates sharing at least one intent tag.
	Categories []string
}

// Candidate is one scored search result.
type Candidate struct {
	Profile db.Profile        `json:"profile"`
	Score   scoring.Breakdown `json:"score"`
}

// CandidateBatch is a bounded page of results. An empty batch with no next
// token means the search is exhausted — a valid terminal state, not an
// error.
type CandidateBatch struct {
	Candidates    []Candidate `json:"candidates"`
	NextPageToken *string     `json:"next_page_token,omitempty"`
}

// SwipeResult reports what a recorded like produced.
type SwipeResult struct {
	Mutual  bool   `json:"mutual"`
	MatchID *int64 `json:"match_id,omitempty"`
}

// Service wires the eligibility filter, scorer and match resolver on top of
// the repositories. It keeps no per-search state: pagination cursors travel
// with the caller.
type Service struct {
	appCtx   *app.AppContext
	profiles *repository.ProfileRepository
	edges    *repository.EdgeRepository
	matches  *repository.MatchRepository
}

// NewService creates the discovery service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		profiles: repository.NewProfileRepository(appCtx.DB),
		edges:    repository.NewEdgeRepository(appCtx.DB),
		matches:  repository.NewMatchRepository(appCtx.DB),
	}
}

// ExclusionSet computes the ids that must never appear in the requesting
// user's results: self, already liked, already skipped, blocked and
// blocking users. It is recomputed fresh on every search call because
// like/skip/block state changes between calls.
func (s *Service) ExclusionSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	excluded := map[int64]struct{}{userID: {}}

	for _, kind := range []db.EdgeKind{db.EdgeLike, db.EdgeSkip, db.EdgeBlock} {
		ids, err := s.edges.TargetsOf(ctx, userID, kind)
		if err != nil {
			return nil, svcErr.Map("exclusion set", err)
		}
		for _, id := range ids {
			excluded[id] = struct{}{}
		}
	}

	blockers, err := s.edges.SourcesOf(ctx, userID, db.EdgeBlock)
	if err != nil {
		return nil, svcErr.Map("exclusion set", err)
	}
	for _, id := range blockers {
		excluded[id] = struct{}{}
	}

	return excluded, nil
}

// SelectCandidates returns the next ranked batch for a user.
//
// Pipeline:
//  1. Resolve the requester's approved profile (NotFoundError otherwise).
//  2. Compute the fresh exclusion set.
//  3. Fetch the bounded candidate sample (recency-ordered, or ELO-ordered
//     for the TOP-1000 filter).
//  4. Apply hard filters and score survivors; unscoreable profiles are
//     logged and skipped, never fatal.
//  5. Sort by score desc, recency desc, id asc — deterministic for
//     identical inputs — and slice out the cursor page.
//
// The whole call runs under the configured search time budget; hitting it
// yields a TimeoutError rather than a silently truncated ranking.
func (s *Service) SelectCandidates(ctx context.Context, userID int64, f Filters, pageToken *string, limit int) (*CandidateBatch, error) {
	started := time.Now()

	cfg := s.appCtx.Cfg
	if limit <= 0 {
		limit = cfg.Search.DefaultLimit
	}
	if limit > cfg.Search.MaxLimit {
		limit = cfg.Search.MaxLimit
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Search.Timeout)
	defer cancel()

	cursor, err := pagination.Decode(tokenString(pageToken))
	if err != nil {
		return nil, svcErr.Validationf("invalid page token")
	}

	requester, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map("profile", err)
	}
	if !requester.IsApproved() {
		// an unapproved profile cannot search at all
		return nil, svcErr.NotFound("approved profile", userID)
	}
	requesterRank, err := requester.RankValue()
	if err != nil {
		return nil, err
	}
	if _, err := rank.Normalize(requesterRank); err != nil {
		return nil, err
	}

	excluded, err := s.ExclusionSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	query := repository.CandidateQuery{
		ExcludeIDs: setToSlice(excluded),
		Limit:      cfg.Search.SampleSize,
	}
	eloFilter := cs2.EloFilterByID(f.EloFilterID)
	if eloFilter != nil {
		if eloFilter.TopN > 0 {
			query.OrderByElo = true
			query.Limit = eloFilter.TopN
		} else {
			query.EloMin = eloFilter.Min
			query.EloMax = eloFilter.Max
		}
	}

	sample, err := s.profiles.ListCandidates(ctx, query)
	if err != nil {
		return nil, svcErr.Map("candidate fetch", err)
	}

	scored := make([]Candidate, 0, len(sample))
	for i := range sample {
		cand := &sample[i]

		if !s.passesHardFilters(cand, eloFilter, f.Categories) {
			continue
		}

		breakdown, err := scoring.Score(requester, cand)
		if err != nil {
			if svcErr.IsValidation(err) {
				metrics.UnscoreableProfiles.Inc()
				s.appCtx.Logger.Warn("skipping unscoreable candidate", "candidate", cand.UserID, "err", err)
				continue
			}
			return nil, err
		}
		scored = append(scored, Candidate{Profile: *cand, Score: breakdown})
	}

	if err := ctx.Err(); err != nil {
		return nil, svcErr.Map("candidate selection", err)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := &scored[i], &scored[j]
		if a.Score.Total != b.Score.Total {
			return a.Score.Total > b.Score.Total
		}
		if !a.Profile.UpdatedAt.Equal(b.Profile.UpdatedAt) {
			return a.Profile.UpdatedAt.After(b.Profile.UpdatedAt)
		}
		return a.Profile.UserID < b.Profile.UserID
	})

	batch := &CandidateBatch{Candidates: []Candidate{}}
	if cursor.Offset < len(scored) {
		end := cursor.Offset + limit
		if end > len(scored) {
			end = len(scored)
		}
		batch.Candidates = scored[cursor.Offset:end]
		if end < len(scored) {
			token, _ := pagination.Encode(pagination.Cursor{Offset: end})
			batch.NextPageToken = &token
		}
	}

	metrics.SearchDuration.Observe(time.Since(started).Seconds())
	metrics.CandidatesReturned.Observe(float64(len(batch.Candidates)))

	s.appCtx.Logger.Debug("candidate batch built",
		"user", userID,
		"sample", len(sample),
		"scored", len(scored),
		"returned", len(batch.Candidates),
	)

	return batch, nil
}

// passesHardFilters applies the non-scored exclusion criteria: the named
// ELO range (checked on the normalized axis so tier-ranked candidates are
// handled too) and the category tag intersection.
func (s *Service) passesHardFilters(cand *db.Profile, eloFilter *cs2.EloFilterRange, categories []string) bool {
	if eloFilter != nil && eloFilter.TopN == 0 {
		v, err := cand.RankValue()
		if err != nil {
			return false
		}
		norm, err := rank.Normalize(v)
		if err != nil {
			return false
		}
		if eloFilter.Min > 0 && norm < eloFilter.Min {
			return false
		}
		if eloFilter.Max > 0 && norm > eloFilter.Max {
			return false
		}
	}

	if len(categories) > 0 && !sharesCategory(cand.Categories, categories) {
		return false
	}

	return true
}

// RecordSkip records a skip decision. Idempotent and terminal for the pair:
// a skip can never produce a match.
func (s *Service) RecordSkip(ctx context.Context, from, to int64) error {
	if from == to {
		return svcErr.Validationf("cannot swipe on yourself")
	}
	if _, err := s.edges.CreateEdge(ctx, from, to, db.EdgeSkip); err != nil {
		return svcErr.Map("skip edge", err)
	}
	metrics.SwipesTotal.WithLabelValues("skip").Inc()
	s.appCtx.Logger.Debug("skip recorded", "from", from, "to", to)
	return nil
}

// RecordLike records a like decision and resolves reciprocity.
//
// Behavior:
//   - The like edge insert is idempotent.
//   - If the reverse like already exists, the canonical match is created
//     at most once; a concurrent-creation conflict is folded into "match
//     already exists", never surfaced as a failure.
//   - Calling again after a match reports the same mutual result and the
//     same match id.
func (s *Service) RecordLike(ctx context.Context, from, to int64) (SwipeResult, error) {
	if from == to {
		return SwipeResult{}, svcErr.Validationf("cannot swipe on yourself")
	}

	inserted, err := s.edges.CreateEdge(ctx, from, to, db.EdgeLike)
	if err != nil {
		return SwipeResult{}, svcErr.Map("like edge", err)
	}
	metrics.SwipesTotal.WithLabelValues("like").Inc()

	// bump the recipient's cached incoming-like counter, but only for a
	// fresh edge: a repeated like must not let the cache drift above the
	// DB count. Cache errors are non-fatal, the DB stays authoritative.
	if inserted {
		if err := s.appCtx.RedisCache.IncrLikedYouCount(ctx, to); err != nil {
			s.appCtx.Logger.Warn("liked-you cache incr failed", "user", to, "err", err)
		}
	}

	reverse, err := s.edges.HasEdge(ctx, to, from, db.EdgeLike)
	if err != nil {
		return SwipeResult{}, svcErr.Map("reverse like check", err)
	}
	if !reverse {
		return SwipeResult{Mutual: false}, nil
	}

	matchID, created, err := s.matches.CreateMatch(ctx, from, to)
	if err != nil {
		mapped := svcErr.Map("match create", err)
		if !svcErr.IsConflict(mapped) {
			return SwipeResult{}, mapped
		}
		// lost a concurrent race: the match exists, fetch it
		existing, err := s.matches.GetByPair(ctx, from, to)
		if err != nil {
			return SwipeResult{}, svcErr.Map("match lookup", err)
		}
		matchID = existing.ID
	}
	if created {
		metrics.MatchesTotal.Inc()
		s.appCtx.Logger.Info("mutual match created", "user_a", from, "user_b", to, "match_id", matchID)
	}

	return SwipeResult{Mutual: true, MatchID: &matchID}, nil
}

// CountLikedYou returns how many users liked the given user.
// Cache-first strategy:
//  1. Attempts to read the Redis counter (TTL refreshed on hit).
//  2. On miss, falls back to the DB and repopulates the cache.
func (s *Service) CountLikedYou(ctx context.Context, userID int64) (int64, error) {
	if n, ok, err := s.appCtx.RedisCache.GetLikedYouCount(ctx, userID); err == nil && ok {
		return n, nil
	} else if err != nil {
		s.appCtx.Logger.Warn("liked-you cache read failed", "user", userID, "err", err)
	}

	count, err := s.edges.CountIncomingLikes(ctx, userID)
	if err != nil {
		return 0, svcErr.Map("liked-you count", err)
	}

	if err := s.appCtx.RedisCache.SetLikedYouCount(ctx, userID, count); err != nil {
		s.appCtx.Logger.Warn("liked-you cache write failed", "user", userID, "err", err)
	}

	return count, nil
}

// ListMatches returns the user's active matches, newest first.
func (s *Service) ListMatches(ctx context.Context, userID int64) ([]db.Match, error) {
	matches, err := s.matches.ListActive(ctx, userID)
	if err != nil {
		return nil, svcErr.Map("match list", err)
	}
	return matches, nil
}

// --- helpers ---

func tokenString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func setToSlice(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func sharesCategory(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
