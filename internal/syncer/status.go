package syncer

import "sync"

type Status string

const (
	StatusIdle    Status = "idle"
	StatusSyncing Status = "syncing"
	StatusError   Status = "error"
	StatusOffline Status = "offline"
)

// State is the read-only status surface exposed to clients.
type State struct {
	Status       Status `json:"status"`
	LastSyncTime int64  `json:"lastSyncTime,omitempty"` // epoch ms
	Error        string `json:"error,omitempty"`
	IsOnline     bool   `json:"isOnline"`
}

// Tracker is the process-wide sync status holder. It is injectable so
// tests get a fresh one per case instead of sharing a mutable global.
type Tracker struct {
	mutex     sync.RWMutex
	state     State
	subs      map[int]chan State
	nextSubID int
}

func NewTracker() *Tracker {
	return &Tracker{
		state: State{Status: StatusIdle},
		subs:  make(map[int]chan State),
	}
}

func (t *Tracker) State() State {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.state
}

// Subscribe returns a channel of state snapshots and an unsubscribe
// function. Slow subscribers miss updates instead of blocking the
// sync engine.
func (t *Tracker) Subscribe() (<-chan State, func()) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	id := t.nextSubID
	t.nextSubID++
	ch := make(chan State, 8)
	t.subs[id] = ch

	unsubscribe := func() {
		t.mutex.Lock()
		defer t.mutex.Unlock()
		if sub, ok := t.subs[id]; ok {
			delete(t.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

func (t *Tracker) SetOnline(online bool) {
	t.update(func(s *State) {
		s.IsOnline = online
	})
}

func (t *Tracker) SetSyncing() {
	t.update(func(s *State) {
		s.Status = StatusSyncing
		s.Error = ""
	})
}

func (t *Tracker) SetSynced(nowMs int64) {
	t.update(func(s *State) {
		s.Status = StatusIdle
		s.LastSyncTime = nowMs
		s.Error = ""
	})
}

func (t *Tracker) SetError(message string) {
	t.update(func(s *State) {
		s.Status = StatusError
		s.Error = message
	})
}

// SetOffline marks a sync attempt short-circuited by missing
// connectivity. Not an error state.
func (t *Tracker) SetOffline() {
	t.update(func(s *State) {
		s.Status = StatusOffline
		s.Error = ""
	})
}

// Reset puts the tracker back into its initial state.
func (t *Tracker) Reset() {
	t.update(func(s *State) {
		*s = State{Status: StatusIdle}
	})
}

func (t *Tracker) update(apply func(*State)) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	apply(&t.state)

	// sends stay under the lock, an unsubscribe can never close a
	// channel mid-broadcast; sends never block thanks to the default case
	for _, ch := range t.subs {
		select {
		case ch <- t.state:
		default:
		}
	}
}
