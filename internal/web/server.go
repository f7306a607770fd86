// Package web serves the simulator over HTTP and WebSocket: a small
// REST API for cube operations plus a broadcast hub that pushes state
// changes to connected clients.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/solver"
)

// Server is the HTTP handler for the cube API. All cube access goes
// through the manager; all push traffic goes through the hub.
type Server struct {
	manager *Manager
	hub     *Hub
	mux     *http.ServeMux
}

// NewServer creates a server with a fresh manager and hub.
func NewServer() *Server {
	s := &Server{
		manager: NewManager(),
		hub:     NewHub(),
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/cube/state", s.handleState)
	s.mux.HandleFunc("POST /api/cube/move", s.handleMove)
	s.mux.HandleFunc("POST /api/cube/scramble", s.handleScramble)
	s.mux.HandleFunc("POST /api/cube/reset", s.handleReset)
	s.mux.HandleFunc("POST /api/cube/solve", s.handleSolve)
	s.mux.HandleFunc("GET /api/solvers", s.handleSolvers)
	s.mux.HandleFunc("GET /ws", s.handleWS)
}

// ServeHTTP dispatches to the API routes with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	webLog.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

// Run serves the API on addr until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	webLog.Info().Str("addr", addr).Msg("web server listening")

	select {
	case err := <-errc:
		return fmt.Errorf("web server stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		webLog.Info().Msg("web server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func cubeID(r *http.Request) string {
	return r.URL.Query().Get("cube_id")
}

func broadcastID(r *http.Request) string {
	if id := cubeID(r); id != "" {
		return id
	}
	return DefaultCube
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.State(cubeID(r)))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Moves) == "" {
		writeError(w, http.StatusBadRequest, errors.New("no moves given"))
		return
	}

	var state CubeState
	err := s.manager.Do(cubeID(r), func(cube *cubesim.Cube) error {
		if err := cube.ApplyNotation(req.Moves); err != nil {
			return err
		}
		state = snapshotState(cube)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	webLog.Debug().Str("cube_id", broadcastID(r)).Str("moves", req.Moves).Msg("moves applied")
	s.hub.Broadcast(moveEvent{
		Type:         "cube_state_changed",
		CubeID:       broadcastID(r),
		State:        state,
		MovesApplied: req.Moves,
		Animate:      req.Animate,
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req scrambleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.NumMoves <= 0 {
		req.NumMoves = 20
	}

	var state CubeState
	err := s.manager.Do(cubeID(r), func(cube *cubesim.Cube) error {
		if _, err := cube.Scramble(req.NumMoves); err != nil {
			return err
		}
		state = snapshotState(cube)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	webLog.Info().Str("cube_id", broadcastID(r)).Int("moves", req.NumMoves).Msg("cube scrambled")
	s.hub.Broadcast(scrambleEvent{
		Type:          "cube_scrambled",
		CubeID:        broadcastID(r),
		State:         state,
		ScrambleMoves: req.NumMoves,
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var state CubeState
	_ = s.manager.Do(cubeID(r), func(cube *cubesim.Cube) error {
		cube.Reset()
		state = snapshotState(cube)
		return nil
	})

	webLog.Info().Str("cube_id", broadcastID(r)).Msg("cube reset")
	s.hub.Broadcast(resetEvent{
		Type:   "cube_reset",
		CubeID: broadcastID(r),
		State:  state,
	})
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	method := strings.ToLower(strings.TrimSpace(req.Method))
	if method == "" {
		method = "layer_by_layer"
	}

	sv, err := solver.ByName(method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var steps []solver.Step
	var solveTime float64
	err = s.manager.Do(cubeID(r), func(cube *cubesim.Cube) error {
		if !sv.CanSolve(cube) {
			return fmt.Errorf("%s cannot solve a %dx%dx%d cube",
				method, cube.Size(), cube.Size(), cube.Size())
		}
		start := time.Now()
		var solveErr error
		steps, solveErr = sv.Solve(cube)
		solveTime = time.Since(start).Seconds()
		return solveErr
	})
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			writeError(w, http.StatusUnprocessableEntity, err)
		} else {
			writeError(w, http.StatusBadRequest, err)
		}
		return
	}

	solution := buildSolution(method, sv.Name(), steps, solveTime)
	webLog.Info().
		Str("cube_id", broadcastID(r)).
		Str("method", method).
		Int("total_moves", solution.TotalMoves).
		Msg("solution found")
	s.hub.Broadcast(solutionEvent{
		Type:     "solution_found",
		CubeID:   broadcastID(r),
		Solution: solution,
	})
	writeJSON(w, http.StatusOK, solution)
}

func (s *Server) handleSolvers(w http.ResponseWriter, r *http.Request) {
	methods := solver.Methods()
	descriptions := make(map[string]string, len(methods))
	for key, sv := range methods {
		descriptions[key] = sv.Name()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"solvers":      solver.MethodNames(),
		"descriptions": descriptions,
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		webLog.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := s.hub.add(conn)
	defer s.hub.remove(c)

	state := s.manager.State(DefaultCube)
	if err := c.send(wsReply{Type: "initial_state", State: &state}); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := sonic.Unmarshal(data, &msg); err != nil {
			webLog.Warn().Err(err).Msg("ignoring malformed websocket message")
			continue
		}

		switch msg.Type {
		case "ping":
			if err := c.send(wsReply{Type: "pong"}); err != nil {
				return
			}
		case "get_state":
			state := s.manager.State(DefaultCube)
			if err := c.send(wsReply{Type: "cube_state", State: &state}); err != nil {
				return
			}
		}
	}
}

// readJSON decodes a request body; an empty body decodes to the zero
// value so optional bodies fall back to defaults.
func readJSON(r *http.Request, v any) error {
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(v); err != nil {
		webLog.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
