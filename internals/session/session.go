package session

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")

// Session holds the identity bound at login for the rest of the process
// run. It is passed explicitly to callers instead of living in package
// state, so a second session is possible even though the CLI never
// creates one.
type Session struct {
	userID int64
	bound  bool
}

func New() *Session {
	return &Session{}
}

// Establish binds the session to userID. Later calls overwrite the
// binding; there is no logout.
func (s *Session) Establish(userID int64) {
	s.userID = userID
	s.bound = true
}

// Current returns the bound user id, or ErrNotAuthenticated when no
// login has happened yet.
func (s *Session) Current() (int64, error) {
	if !s.bound {
		return 0, ErrNotAuthenticated
	}
	return s.userID, nil
}
