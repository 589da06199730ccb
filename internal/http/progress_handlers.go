package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"catacuti-backend-go/internal/services"
)

type ProgressRequest struct {
	UserID    json.Number   `json:"user_id"`
	Subject   string        `json:"subject"`
	Chapter   string        `json:"chapter"`
	Score     progressScore `json:"score"`
	Completed truthy        `json:"completed"`
}

// progressScore takes a JSON number or numeric string, rounding fractions
// to the nearest point. Null or absent is 0.
type progressScore int

func (p *progressScore) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		*p = progressScore(math.Round(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return errors.New("score must be a number")
		}
		*p = progressScore(math.Round(f))
	default:
		return errors.New("score must be a number")
	}
	return nil
}

// truthy takes a JSON bool, a number (non-zero is true) or a boolean string.
type truthy bool

func (b *truthy) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*b = false
	case bool:
		*b = truthy(v)
	case float64:
		*b = v != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.New("completed must be a boolean")
		}
		*b = truthy(parsed)
	default:
		return errors.New("completed must be a boolean")
	}
	return nil
}

func (s *Server) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if err := decodeBody(r, &req); err != nil {
		s.badBody(w, err)
		return
	}
	userID, _ := strconv.ParseInt(strings.TrimSpace(req.UserID.String()), 10, 64)
	if _, err := s.Service.RecordProgress(r.Context(), services.ProgressInput{
		UserID:    userID,
		Subject:   req.Subject,
		Chapter:   req.Chapter,
		Score:     int(req.Score),
		Completed: bool(req.Completed),
	}); err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, nil, "Progress saved successfully")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		s.NotFound(w, r)
		return
	}
	items, err := s.Service.GetProgress(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, items, "")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		s.NotFound(w, r)
		return
	}
	snapshot, err := s.Service.GetStreak(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, snapshot, "")
}
