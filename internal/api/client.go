package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/triplematch/setcli/pkg/protocol"
)

const clientIDCookie = "client_id"

// Client talks to the lobby endpoints of the game server.
// The identity cookie issued by /api/auth is kept in the cookie jar
// and sent with every subsequent request.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
		logger: logger.Named("api"),
	}, nil
}

// Authenticate requests an identity cookie. It is a no-op if the jar
// already holds one.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.hasClientID() {
		c.logger.Debug("client identity cookie already present")
		return nil
	}

	response, err := c.get(ctx, "/api/auth")
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return errors.Errorf("authentication failed with status %d", response.StatusCode)
	}

	c.logger.Info("authenticated")
	return nil
}

// CreateRoom asks the server for a new room and returns its code.
func (c *Client) CreateRoom(ctx context.Context, mode protocol.GameMode) (protocol.RoomCode, error) {
	path := fmt.Sprintf("/api/new?mode=%s", url.QueryEscape(string(mode)))
	response, err := c.get(ctx, path)
	if err != nil {
		return protocol.RoomCode{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return protocol.RoomCode{}, errors.Errorf("failed to create room: status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return protocol.RoomCode{}, errors.Wrap(err, "failed to read room code")
	}

	code, err := protocol.ParseRoomCode(string(body))
	if err != nil {
		return protocol.RoomCode{}, errors.Wrap(err, "server returned invalid room code")
	}

	c.logger.Info("room created", zap.String("roomCode", code.String()))
	return code, nil
}

// RoomExists checks whether a room with the given code is known to the server.
func (c *Client) RoomExists(ctx context.Context, code protocol.RoomCode) (bool, error) {
	response, err := c.get(ctx, "/api/game/"+url.PathEscape(code.String()))
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK, nil
}

// ListGames returns codes of the currently open rooms.
func (c *Client) ListGames(ctx context.Context) ([]protocol.RoomCode, error) {
	response, err := c.get(ctx, "/api/games")
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("failed to list games: status %d", response.StatusCode)
	}

	var codes []string
	err = json.NewDecoder(response.Body).Decode(&codes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode games list")
	}

	games := make([]protocol.RoomCode, 0, len(codes))
	for _, code := range codes {
		games = append(games, protocol.NewRoomCode(code))
	}
	return games, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	response, err := c.http.Do(request)
	return response, errors.Wrap(err, "request failed")
}

func (c *Client) hasClientID() bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	for _, cookie := range c.http.Jar.Cookies(base) {
		if cookie.Name == clientIDCookie {
			return true
		}
	}
	return false
}
