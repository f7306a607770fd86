package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) CubeState {
	t.Helper()
	var state CubeState
	if err := sonic.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("failed to decode state from %q: %v", rec.Body.String(), err)
	}
	return state
}

func TestStateEndpoint(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodGet, "/api/cube/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q", ct)
	}

	state := decodeState(t, rec)
	if state.Size != 3 {
		t.Errorf("got size %d, want 3", state.Size)
	}
	if !state.IsSolved {
		t.Error("fresh cube should be solved")
	}
	if state.MoveCount != 0 {
		t.Errorf("got move count %d, want 0", state.MoveCount)
	}
	if len(state.FaceColors) != 6 {
		t.Fatalf("got %d faces, want 6", len(state.FaceColors))
	}
	grid, ok := state.FaceColors["U"]
	if !ok {
		t.Fatal("state is missing the U face")
	}
	if len(grid) != 3 || len(grid[0]) != 3 {
		t.Fatalf("U face is %dx%d, want 3x3", len(grid), len(grid[0]))
	}
	for _, row := range grid {
		for _, cell := range row {
			if cell != "#ffffff" {
				t.Errorf("solved U face has cell %q, want #ffffff", cell)
			}
		}
	}
}

func TestMoveEndpoint(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/move", `{"moves":"R U R' U'"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if state.MoveCount != 4 {
		t.Errorf("got move count %d, want 4", state.MoveCount)
	}
	if state.IsSolved {
		t.Error("cube should not be solved after R U R' U'")
	}

	// The cube lives in the manager, so a later query sees the moves.
	state = decodeState(t, doRequest(t, s, http.MethodGet, "/api/cube/state", ""))
	if state.MoveCount != 4 {
		t.Errorf("state did not persist, move count %d", state.MoveCount)
	}
}

func TestMoveEndpointRejectsEmptyMoves(t *testing.T) {
	s := NewServer()

	for _, body := range []string{`{}`, `{"moves":"   "}`} {
		rec := doRequest(t, s, http.MethodPost, "/api/cube/move", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: got status %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestMoveEndpointRejectsBadNotation(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/move", `{"moves":"R Q U"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] == "" {
		t.Error("error response should carry a message")
	}

	// A rejected sequence must not half-apply.
	state := decodeState(t, doRequest(t, s, http.MethodGet, "/api/cube/state", ""))
	if state.MoveCount != 0 || !state.IsSolved {
		t.Errorf("cube moved on invalid input: %+v", state)
	}
}

func TestMoveEndpointRejectsMalformedJSON(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/move", `{"moves":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestNamedCubesAreIsolated(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/move?cube_id=practice", `{"moves":"R2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	practice := decodeState(t, doRequest(t, s, http.MethodGet, "/api/cube/state?cube_id=practice", ""))
	if practice.MoveCount != 1 {
		t.Errorf("practice cube move count %d, want 1", practice.MoveCount)
	}

	main := decodeState(t, doRequest(t, s, http.MethodGet, "/api/cube/state", ""))
	if main.MoveCount != 0 || !main.IsSolved {
		t.Errorf("default cube was touched: %+v", main)
	}
}

func TestScrambleEndpointDefaultsTo20Moves(t *testing.T) {
	s := NewServer()

	// Empty body falls back to the default length.
	rec := doRequest(t, s, http.MethodPost, "/api/cube/scramble", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	state := decodeState(t, rec)
	if state.MoveCount != 20 {
		t.Errorf("got move count %d, want 20", state.MoveCount)
	}
	if state.IsSolved {
		t.Error("cube should not be solved after a 20-move scramble")
	}
}

func TestScrambleEndpointCustomLength(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/scramble", `{"num_moves":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	if state := decodeState(t, rec); state.MoveCount != 5 {
		t.Errorf("got move count %d, want 5", state.MoveCount)
	}
}

func TestResetEndpoint(t *testing.T) {
	s := NewServer()

	doRequest(t, s, http.MethodPost, "/api/cube/scramble", "")
	rec := doRequest(t, s, http.MethodPost, "/api/cube/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	state := decodeState(t, rec)
	if !state.IsSolved || state.MoveCount != 0 {
		t.Errorf("reset left the cube at %+v", state)
	}
}

func TestSolveEndpoint(t *testing.T) {
	s := NewServer()

	doRequest(t, s, http.MethodPost, "/api/cube/move", `{"moves":"R U R' U'"}`)

	// An empty method falls back to layer_by_layer.
	rec := doRequest(t, s, http.MethodPost, "/api/cube/solve", `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	var solution Solution
	if err := sonic.Unmarshal(rec.Body.Bytes(), &solution); err != nil {
		t.Fatal(err)
	}
	if solution.Method != "layer_by_layer" {
		t.Errorf("got method %q", solution.Method)
	}
	if len(solution.Steps) == 0 || solution.TotalMoves == 0 {
		t.Errorf("solution is empty: %+v", solution)
	}
	if !strings.Contains(solution.Summary.Solver, "Layer-by-Layer") {
		t.Errorf("summary names solver %q", solution.Summary.Solver)
	}
	if solution.SolveTime < 0 {
		t.Errorf("negative solve time %f", solution.SolveTime)
	}

	// Solving reports moves without applying them.
	state := decodeState(t, doRequest(t, s, http.MethodGet, "/api/cube/state", ""))
	if state.MoveCount != 4 {
		t.Errorf("solve mutated the cube, move count %d", state.MoveCount)
	}
}

func TestSolveEndpointSolvedCube(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/solve", `{"method":"cfop"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	var solution Solution
	if err := sonic.Unmarshal(rec.Body.Bytes(), &solution); err != nil {
		t.Fatal(err)
	}
	if len(solution.Steps) != 0 || solution.TotalMoves != 0 {
		t.Errorf("a solved cube should need no moves: %+v", solution)
	}
}

func TestSolveEndpointUnknownMethod(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodPost, "/api/cube/solve", `{"method":"kociemba"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp map[string]string
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp["error"], "layer_by_layer") {
		t.Errorf("error should list the known methods, got %q", resp["error"])
	}
}

func TestSolversEndpoint(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodGet, "/api/solvers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}

	var resp struct {
		Solvers      []string          `json:"solvers"`
		Descriptions map[string]string `json:"descriptions"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Solvers) != 2 {
		t.Fatalf("got %d solvers, want 2", len(resp.Solvers))
	}
	for _, name := range resp.Solvers {
		if resp.Descriptions[name] == "" {
			t.Errorf("solver %q has no description", name)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := NewServer()

	rec := doRequest(t, s, http.MethodDelete, "/api/cube/state", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// dialWS connects a test websocket client to a running server.
func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", url, err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readEvent reads one JSON message off the socket.
func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("websocket read failed: %v", err)
	}
	var msg map[string]any
	if err := sonic.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to decode %q: %v", data, err)
	}
	return msg
}

func eventType(msg map[string]any) string {
	s, _ := msg["type"].(string)
	return s
}

func TestWebSocketInitialStateAndPing(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn := dialWS(t, ts)

	msg := readEvent(t, conn)
	if eventType(msg) != "initial_state" {
		t.Fatalf("first message is %q, want initial_state", eventType(msg))
	}
	if msg["state"] == nil {
		t.Fatal("initial_state carries no state")
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatal(err)
	}
	if msg := readEvent(t, conn); eventType(msg) != "pong" {
		t.Errorf("got %q, want pong", eventType(msg))
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"get_state"}`)); err != nil {
		t.Fatal(err)
	}
	if msg := readEvent(t, conn); eventType(msg) != "cube_state" {
		t.Errorf("got %q, want cube_state", eventType(msg))
	}
}

func TestWebSocketIgnoresMalformedMessages(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn := dialWS(t, ts)
	readEvent(t, conn) // initial_state

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	// The connection survives; a ping still answers.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)); err != nil {
		t.Fatal(err)
	}
	if msg := readEvent(t, conn); eventType(msg) != "pong" {
		t.Errorf("got %q, want pong", eventType(msg))
	}
}

func TestWebSocketReceivesMoveBroadcast(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	conn := dialWS(t, ts)
	readEvent(t, conn) // initial_state

	resp, err := ts.Client().Post(ts.URL+"/api/cube/move", "application/json",
		strings.NewReader(`{"moves":"R"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("move request failed with %d", resp.StatusCode)
	}

	msg := readEvent(t, conn)
	if eventType(msg) != "cube_state_changed" {
		t.Fatalf("got %q, want cube_state_changed", eventType(msg))
	}
	if moves, _ := msg["moves_applied"].(string); moves != "R" {
		t.Errorf("got moves_applied %q, want R", moves)
	}
	if id, _ := msg["cube_id"].(string); id != DefaultCube {
		t.Errorf("got cube_id %q, want %q", id, DefaultCube)
	}
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s)
	defer ts.Close()

	first := dialWS(t, ts)
	readEvent(t, first)
	second := dialWS(t, ts)
	readEvent(t, second)

	if got := s.hub.Count(); got != 2 {
		t.Fatalf("got %d clients, want 2", got)
	}

	first.Close()

	// The read loop notices the close and unregisters the client.
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.Count() > 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := s.hub.Count(); got != 1 {
		t.Errorf("got %d clients after disconnect, want 1", got)
	}
}
