package httpapi

import (
	"net/http"
	"time"
)

const (
	serviceName    = "CataCuti Learning App"
	serviceVersion = "1.0.0"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.Service.DB.PingContext(r.Context()); err != nil {
		s.Log.Error("health check failed", "error", err)
		WriteError(w, http.StatusInternalServerError, err.Error(), "Service health check failed")
		return
	}
	WriteData(w, HealthResponse{
		Status:    "healthy",
		Timestamp: s.Service.Now().In(s.Service.Location),
		Service:   serviceName,
		Version:   serviceVersion,
	}, "Service is running normally")
}
