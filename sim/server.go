package sim

import (
	"errors"
	"fmt"
)

// ErrLoadUnderflow reports a release on a server that has nothing in service.
// It always indicates an engine bug: every departure is paired with an earlier
// assignment to the same server.
var ErrLoadUnderflow = errors.New("release on idle server")

// Server is a simulated request handler with unbounded capacity.
// Servers are owned by a single Simulator and mutated only from its event loop.
type Server struct {
	ID                 int
	Load               int       // requests currently in service, never negative
	CompletedDurations []float64 // realized service durations, in completion order
	Assigned           int       // requests ever dispatched to this server

	busyTime  float64 // closed busy periods (load > 0) accumulated so far
	busySince float64 // start of the current busy period; valid while Load > 0
}

// NewServers creates n idle servers with IDs 0..n-1.
func NewServers(n int) []*Server {
	servers := make([]*Server, n)
	for i := range servers {
		servers[i] = &Server{ID: i, CompletedDurations: make([]float64, 0)}
	}
	return servers
}

// Assign records a newly dispatched request at time now.
func (s *Server) Assign(now float64) {
	if s.Load == 0 {
		s.busySince = now
	}
	s.Load++
	s.Assigned++
}

// Release records a completed request at time now with its realized duration.
// Returns ErrLoadUnderflow if the server has no request in service; load is left untouched.
func (s *Server) Release(now, duration float64) error {
	if s.Load <= 0 {
		return fmt.Errorf("server %d at t=%.6f: %w", s.ID, now, ErrLoadUnderflow)
	}
	s.Load--
	s.CompletedDurations = append(s.CompletedDurations, duration)
	if s.Load == 0 {
		s.busyTime += now - s.busySince
	}
	return nil
}

// BusyTime returns the total time in [0, horizon] during which the server had
// at least one request in service. An open busy period is cut at horizon.
func (s *Server) BusyTime(horizon float64) float64 {
	busy := s.busyTime
	if s.Load > 0 && horizon > s.busySince {
		busy += horizon - s.busySince
	}
	return busy
}
