package httpapi

import (
	"net/http"

	"catacuti-backend-go/internal/services"
)

func (s *Server) ListContent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items, err := s.Service.ListContent(r.Context(), services.ContentFilter{
		Subject: query.Get("subject"),
		Type:    query.Get("type"),
		Class:   query.Get("class"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, items, "")
}

func (s *Server) GetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		s.NotFound(w, r)
		return
	}
	item, err := s.Service.GetContent(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, item, "")
}
