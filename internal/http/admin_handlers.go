package httpapi

import "net/http"

func (s *Server) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Service.AdminStats(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, stats, "")
}

// AdminUsers lists every account, newest first.
func (s *Server) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Service.AdminListUsers(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteData(w, users, "")
}
