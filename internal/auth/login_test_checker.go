package auth

import "context"

type LoginTestChecker struct {
	LoggedSessions map[string]string // token -> username
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		map[string]string{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, ok := c.LoggedSessions[token]
	return ok, nil
}

func (c *LoginTestChecker) User(_ context.Context, token string) (string, error) {
	username, ok := c.LoggedSessions[token]
	if !ok {
		return "", ErrSessionExpired
	}
	return username, nil
}
