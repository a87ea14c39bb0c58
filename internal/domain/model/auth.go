package model

// AuthState is the outcome of a session guard check.
type AuthState int

const (
	AuthUnknown AuthState = iota
	AuthAuthorized
	AuthUnauthorized
)

func (s AuthState) String() string {
	switch s {
	case AuthAuthorized:
		return "authorized"
	case AuthUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Gate decides what a guarded view renders. Exactly one of
// Loading, Allowed and Denied holds for any state.
type Gate struct {
	State AuthState
}

func (g Gate) Loading() bool { return g.State != AuthAuthorized && g.State != AuthUnauthorized }
func (g Gate) Allowed() bool { return g.State == AuthAuthorized }
func (g Gate) Denied() bool  { return g.State == AuthUnauthorized }
