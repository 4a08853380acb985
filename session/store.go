// Package session holds the per-correspondent conversation state: the
// escalation level and the mute deadline. State is ephemeral by contract;
// it is rebuilt from scratch after a restart and is never evicted.
package session

import "sync"

// State is the session of one correspondent. MuteUntil is wall-clock
// milliseconds, zero when the correspondent is not muted.
type State struct {
	Level     int
	MuteUntil int64
}

// Store maps correspondent jids to their session state. The zero value is
// not usable; construct with NewStore. Only the dialogue engine writes.
type Store struct {
	mu     sync.Mutex
	states map[string]State
}

func NewStore() *Store {
	return &Store{states: make(map[string]State)}
}

// Get returns the state for jid, or the zero state on a miss. A miss does
// not insert anything.
func (s *Store) Get(jid string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[jid]
}

// Set replaces the state for jid wholesale.
func (s *Store) Set(jid string, level int, muteUntil int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[jid] = State{Level: level, MuteUntil: muteUntil}
}

// Len reports how many correspondents currently hold state.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
