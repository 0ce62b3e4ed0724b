package api

import (
	"context"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse tolerates both response shapes the backend has used: the
// token at the top level or nested under data.
type loginResponse struct {
	Token string `json:"token"`
	Data  struct {
		Token string `json:"token"`
	} `json:"data"`
}

func (r loginResponse) token() string {
	if r.Data.Token != "" {
		return r.Data.Token
	}
	return r.Token
}

// Login exchanges credentials for a bearer token. A 2xx response without a
// token in it is still a failed login.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.postJSON(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}

	token := resp.token()
	if token == "" {
		return "", fmt.Errorf("login response carried no token: %w", ErrUnauthorized)
	}
	return token, nil
}

// Logout notifies the server; the response body is ignored.
func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/auth/logout", nil, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
