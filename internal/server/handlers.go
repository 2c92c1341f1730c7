package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo"

	svcErr "github.com/Tw1zzzzz/CisBot2/internal/errors"
	"github.com/Tw1zzzzz/CisBot2/internal/service/discovery"
)

type swipeRequest struct {
	ToUserID int64 `json:"to_user_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleCandidates returns the next ranked batch for a user.
//
// Query params: limit, page_token, elo_filter (named cs2 range id),
// categories (comma-separated intent tags).
func (s *Server) handleCandidates(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return nil
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
		}
		limit = n
	}

	var pageToken *string
	if v := c.QueryParam("page_token"); v != "" {
		pageToken = &v
	}

	filters := discovery.Filters{
		EloFilterID: c.QueryParam("elo_filter"),
	}
	if v := c.QueryParam("categories"); v != "" {
		filters.Categories = strings.Split(v, ",")
	}

	batch, err := s.discovery.SelectCandidates(c.Request().Context(), userID, filters, pageToken, limit)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, batch)
}

func (s *Server) handleLike(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return nil
	}

	var req swipeRequest
	if err := c.Bind(&req); err != nil || req.ToUserID == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "to_user_id is required"})
	}

	result, err := s.discovery.RecordLike(c.Request().Context(), userID, req.ToUserID)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleSkip(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return nil
	}

	var req swipeRequest
	if err := c.Bind(&req); err != nil || req.ToUserID == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "to_user_id is required"})
	}

	if err := s.discovery.RecordSkip(c.Request().Context(), userID, req.ToUserID); err != nil {
		return s.renderError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleLikedYouCount(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return nil
	}

	count, err := s.discovery.CountLikedYou(c.Request().Context(), userID)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) handleMatches(c echo.Context) error {
	userID, ok := pathUserID(c)
	if !ok {
		return nil
	}

	matches, err := s.discovery.ListMatches(c.Request().Context(), userID)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}

// renderError translates the engine taxonomy into HTTP statuses.
func (s *Server) renderError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case svcErr.IsValidation(err):
		status = http.StatusBadRequest
	case svcErr.IsNotFound(err):
		status = http.StatusNotFound
	case svcErr.IsTimeout(err):
		status = http.StatusGatewayTimeout
	case svcErr.IsConflict(err):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.appCtx.Logger.Error("request failed", "req_id", c.Get("req_id"), "err", err)
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}

// pathUserID parses the :id segment, writing a 400 response itself when the
// value is unusable.
func pathUserID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.JSON(http.StatusBadRequest, errorResponse{Error: "user id must be a positive integer"})
		return 0, false
	}
	return id, true
}
