package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/mesto-client/internal/models"
)

// HTTPClient talks to the gallery REST API and the auth service. It holds the
// bearer token issued at login and attaches it to every gallery request.
type HTTPClient struct {
	apiBaseURL  string
	authBaseURL string
	httpClient  *http.Client
	token       string
}

// NewHTTPClient builds a client for the given gallery and auth base URLs.
// The timeout applies per request.
func NewHTTPClient(apiBaseURL, authBaseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		apiBaseURL:  apiBaseURL,
		authBaseURL: authBaseURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token used on subsequent gallery requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// wireUser is the user representation on the wire.
type wireUser struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// wireCard is the card representation on the wire. Likes carries full user
// objects; only their ids are kept locally.
type wireCard struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Link      string     `json:"link"`
	Likes     []wireUser `json:"likes"`
	Owner     wireUser   `json:"owner"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (u wireUser) toModel() models.User {
	return models.User{ID: u.ID, Name: u.Name, About: u.About, AvatarURL: u.Avatar}
}

func (w wireCard) toModel() models.Card {
	likedBy := make([]string, 0, len(w.Likes))
	seen := make(map[string]struct{}, len(w.Likes))
	for _, u := range w.Likes {
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		likedBy = append(likedBy, u.ID)
	}
	return models.Card{
		ID:        w.ID,
		OwnerID:   w.Owner.ID,
		Title:     w.Name,
		ImageURL:  w.Link,
		LikedBy:   likedBy,
		CreatedAt: w.CreatedAt,
	}
}

// do performs a request and decodes a 2xx JSON body into out (if out is not
// nil). Transport failures map to ErrUnavailable, auth failures to
// ErrUnauthorized, and the remaining statuses to the matching sentinel.
func (c *HTTPClient) do(ctx context.Context, method, url, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, code)
	}
}

func (c *HTTPClient) GetUserInfo(ctx context.Context) (models.User, error) {
	var u wireUser
	if err := c.do(ctx, http.MethodGet, c.apiBaseURL+"/users/me", c.token, nil, &u); err != nil {
		return models.User{}, fmt.Errorf("get user info: %w", err)
	}
	return u.toModel(), nil
}

func (c *HTTPClient) GetInitialCards(ctx context.Context) ([]models.Card, error) {
	var wire []wireCard
	if err := c.do(ctx, http.MethodGet, c.apiBaseURL+"/cards", c.token, nil, &wire); err != nil {
		return nil, fmt.Errorf("get initial cards: %w", err)
	}
	cards := make([]models.Card, 0, len(wire))
	for _, w := range wire {
		cards = append(cards, w.toModel())
	}
	return cards, nil
}

func (c *HTTPClient) SaveUserInfo(ctx context.Context, name, about string) (models.User, error) {
	body := map[string]string{"name": name, "about": about}
	var u wireUser
	if err := c.do(ctx, http.MethodPatch, c.apiBaseURL+"/users/me", c.token, body, &u); err != nil {
		return models.User{}, fmt.Errorf("save user info: %w", err)
	}
	return u.toModel(), nil
}

func (c *HTTPClient) SaveUserAvatar(ctx context.Context, avatarURL string) (models.User, error) {
	body := map[string]string{"avatar": avatarURL}
	var u wireUser
	if err := c.do(ctx, http.MethodPatch, c.apiBaseURL+"/users/me/avatar", c.token, body, &u); err != nil {
		return models.User{}, fmt.Errorf("save user avatar: %w", err)
	}
	return u.toModel(), nil
}

func (c *HTTPClient) AddNewCard(ctx context.Context, title, imageURL string) (models.Card, error) {
	body := map[string]string{"name": title, "link": imageURL}
	var w wireCard
	if err := c.do(ctx, http.MethodPost, c.apiBaseURL+"/cards", c.token, body, &w); err != nil {
		return models.Card{}, fmt.Errorf("add new card: %w", err)
	}
	return w.toModel(), nil
}

func (c *HTTPClient) ChangeLikeCardStatus(ctx context.Context, cardID string, liked bool) (models.Card, error) {
	method := http.MethodDelete
	if liked {
		method = http.MethodPut
	}
	var w wireCard
	if err := c.do(ctx, method, c.apiBaseURL+"/cards/"+cardID+"/likes", c.token, nil, &w); err != nil {
		return models.Card{}, fmt.Errorf("change like status: %w", err)
	}
	return w.toModel(), nil
}

func (c *HTTPClient) DeleteCard(ctx context.Context, cardID string) error {
	if err := c.do(ctx, http.MethodDelete, c.apiBaseURL+"/cards/"+cardID, c.token, nil, nil); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, c.authBaseURL+"/signup", "", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, c.authBaseURL+"/signin", "", body, &out); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return out.Token, nil
}

func (c *HTTPClient) CheckToken(ctx context.Context, token string) (string, error) {
	var out struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, c.authBaseURL+"/users/me", token, nil, &out); err != nil {
		return "", fmt.Errorf("check token: %w", err)
	}
	return out.Data.Email, nil
}
