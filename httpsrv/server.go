package httpsrv

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tutils/lcg"
	"github.com/tutils/lcg/counter"
	"github.com/tutils/lcg/counter/period"
	"github.com/tutils/lcg/logger"
)

// MaxCount bounds count and batch query parameters
const MaxCount = 1 << 20

// APIResponse 定义统一的API响应格式
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateRequest is the body of POST /api/sessions; omitted fields take the defaults
type CreateRequest struct {
	A    *int64 `json:"a"`
	C    *int64 `json:"c"`
	M    *int64 `json:"m"`
	Seed *int64 `json:"seed"`
}

func (r *CreateRequest) options() []lcg.Option {
	var opts []lcg.Option
	if r.A != nil {
		opts = append(opts, lcg.WithMultiplier(*r.A))
	}
	if r.C != nil {
		opts = append(opts, lcg.WithIncrement(*r.C))
	}
	if r.M != nil {
		opts = append(opts, lcg.WithModulus(*r.M))
	}
	if r.Seed != nil {
		opts = append(opts, lcg.WithSeed(*r.Seed))
	}
	return opts
}

// NextResponse is the data of GET /api/sessions/{id}/next
type NextResponse struct {
	Values []int64 `json:"values"`
}

// StatsResponse is the data of GET /api/stats
type StatsResponse struct {
	Sessions  int   `json:"sessions"`
	Generated int64 `json:"generated"`
	PerSec    int64 `json:"perSec"`
}

// Server serves generator sessions over HTTP
type Server struct {
	sessions  *SessionManager
	generated counter.Counter
	mux       *http.ServeMux
}

// NewServer create a new Server
func NewServer() *Server {
	s := &Server{
		sessions:  NewSessionManager(),
		generated: period.NewPeriodCounter(time.Second),
		mux:       http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /api/sessions", s.handleCreate)
	s.mux.HandleFunc("GET /api/sessions", s.handleList)
	s.mux.HandleFunc("GET /api/sessions/{id}", s.handleGet)
	s.mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDelete)
	s.mux.HandleFunc("GET /api/sessions/{id}/next", s.handleNext)
	s.mux.HandleFunc("GET /api/sessions/{id}/stream", s.handleStream)
	s.mux.HandleFunc("GET /api/stats", s.handleStats)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// StartServer 启动HTTP服务
func StartServer(listenAddress string) error {
	logger.Info("starting lcg server", "listen", listenAddress)
	return http.ListenAndServe(listenAddress, NewServer())
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error(err, "encode response")
	}
}

func writeOK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger.Warn("request failed", "remote", r.RemoteAddr, "path", r.URL.Path, "status", status, "error", err)
	writeJSON(w, status, APIResponse{Success: false, Error: err.Error()})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return nil, false
	}
	return sess, true
}

// queryCount parses name as a count in [0, MaxCount]; def is used when it is absent.
func queryCount(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	if n < 0 || n > MaxCount {
		return 0, fmt.Errorf("%s must be in [0, %d], got %d", name, MaxCount, n)
	}
	return n, nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
	}
	sess, err := s.sessions.Create(req.options()...)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, lcg.ErrInvalidParameter) {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, err)
		return
	}
	logger.Info("session created", "id", sess.ID, "remote", r.RemoteAddr)
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: sess.Info()})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	list := s.sessions.List()
	infos := make([]SessionInfo, 0, len(list))
	for _, sess := range list {
		infos = append(infos, sess.Info())
	}
	writeOK(w, infos)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeOK(w, sess.Info())
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.Delete(id); err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}
	logger.Info("session deleted", "id", id)
	writeOK(w, nil)
}

// handleNext returns one value without count, or count values in order.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	count, err := queryCount(r, "count", -1)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	var values []int64
	if count < 0 {
		values = []int64{sess.gen.Next()}
	} else {
		values = sess.gen.NextN(count)
	}
	s.generated.Add(int64(len(values)))
	writeOK(w, NextResponse{Values: values})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeOK(w, StatsResponse{
		Sessions:  len(s.sessions.List()),
		Generated: s.generated.Value(),
		PerSec:    s.generated.IncreaceRatePerSec(),
	})
}
