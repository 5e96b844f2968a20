package dialogue

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// SessionStore holds live sessions with a TTL and serializes turns per
// user: two concurrent requests for the same user run one at a time, while
// different users proceed in parallel.
type SessionStore struct {
	sessions *gocache.Cache

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is a per-user mutex with a checkout count; the entry leaves
// the map when the last checkout releases it, so the map only holds users
// with a turn in flight.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: gocache.New(ttl, 2*ttl),
		locks:    make(map[string]*sessionLock),
	}
}

// Checkout locks the user's session and returns it along with a release
// function. The caller must call release when the turn is done; it writes
// the session back (refreshing the TTL) and unlocks.
func (st *SessionStore) Checkout(userID string) (*Session, func()) {
	lock := st.acquire(userID)

	var sess *Session
	if v, ok := st.sessions.Get(userID); ok {
		sess = v.(*Session)
	} else {
		sess = NewSession(userID)
	}

	release := func() {
		st.sessions.SetDefault(userID, sess)
		st.release(userID, lock)
	}
	return sess, release
}

func (st *SessionStore) acquire(userID string) *sessionLock {
	st.mu.Lock()
	lock, ok := st.locks[userID]
	if !ok {
		lock = &sessionLock{}
		st.locks[userID] = lock
	}
	lock.refs++
	st.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (st *SessionStore) release(userID string, lock *sessionLock) {
	lock.mu.Unlock()

	st.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(st.locks, userID)
	}
	st.mu.Unlock()
}
