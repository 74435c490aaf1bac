package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid supabase token")

// ProviderUser is the identity Supabase vouches for.
type ProviderUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Name     string `json:"name"`
	} `json:"user_metadata"`
}

type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetUser resolves an access token to the Supabase user it belongs to.
// Any non-200 answer is treated as an invalid token.
func (c *Client) GetUser(accessToken string) (*ProviderUser, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result userResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.Email == "" {
		return nil, ErrInvalidToken
	}

	name := result.UserMetadata.FullName
	if name == "" {
		name = result.UserMetadata.Name
	}
	if name == "" {
		name = strings.Split(result.Email, "@")[0]
	}

	return &ProviderUser{
		ID:       result.ID,
		Email:    result.Email,
		FullName: name,
	}, nil
}
