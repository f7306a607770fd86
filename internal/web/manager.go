package web

import (
	"sync"

	"github.com/cubesim/cubesim"
)

// DefaultCube is the cube identifier used when a request names none.
const DefaultCube = "main"

// Manager owns the named cube instances served over the API. The
// engine is not safe for concurrent use, so every operation on a cube
// runs under the manager's lock.
type Manager struct {
	mu    sync.Mutex
	cubes map[string]*cubesim.Cube
}

// NewManager creates a manager holding the default cube.
func NewManager() *Manager {
	return &Manager{
		cubes: map[string]*cubesim.Cube{DefaultCube: newDefaultCube()},
	}
}

func newDefaultCube() *cubesim.Cube {
	c, _ := cubesim.NewCube(3) // 3 is always a valid size
	return c
}

// Do runs fn against the named cube, creating a fresh 3x3x3 under an
// unknown identifier. An empty id names the default cube. Calls are
// serialised; fn must not retain the cube beyond its return.
func (m *Manager) Do(id string, fn func(*cubesim.Cube) error) error {
	if id == "" {
		id = DefaultCube
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cube, ok := m.cubes[id]
	if !ok {
		cube = newDefaultCube()
		m.cubes[id] = cube
	}
	return fn(cube)
}

// State returns the wire snapshot of the named cube.
func (m *Manager) State(id string) CubeState {
	var state CubeState
	_ = m.Do(id, func(cube *cubesim.Cube) error {
		state = snapshotState(cube)
		return nil
	})
	return state
}
