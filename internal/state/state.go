package state

import (
	"sync"

	"github.com/rook-computer/solarvis/internal/space"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// State is what a frame is drawn from. Bodies are copies owned by the
// snapshot.
type State struct {
	Phase      Phase
	SystemName string
	Bodies     []space.Body
	Frames     uint64
	Err        string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	snap := store.state
	snap.Bodies = append([]space.Body(nil), store.state.Bodies...)
	return snap
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) SetError(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	store.state.Err = err.Error()
	store.mu.Unlock()
}

func (store *Store) SetSystemName(name string) {
	store.mu.Lock()
	store.state.SystemName = name
	store.mu.Unlock()
}

// SetBodies copies the current body values into the store.
func (store *Store) SetBodies(bodies []*space.Body) {
	copied := make([]space.Body, len(bodies))
	for i, b := range bodies {
		copied[i] = *b
	}
	store.mu.Lock()
	store.state.Bodies = copied
	store.mu.Unlock()
}

// MarkFrame counts one presented frame.
func (store *Store) MarkFrame() {
	store.mu.Lock()
	store.state.Frames++
	store.mu.Unlock()
}
