package models

// Credentials is the body of POST /register and POST /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the body of a successful POST /login.
type LoginResult struct {
	Message  string `json:"message,omitempty"`
	Username string `json:"username"`
}

// MeResult is the body of GET /me. Username is present only when Authenticated.
type MeResult struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// ErrorBody is the failure shape shared by every endpoint: {error} or {message}.
type ErrorBody struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text returns the most specific server-provided text, or "".
func (b ErrorBody) Text() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Message
}
