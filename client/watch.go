package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// ErrStreamReset is returned by Watch when the worker can no longer replay
// the requested events and the caller should refetch state.
var ErrStreamReset = errors.New("event stream reset")

// Watch streams worker events to fn until ctx is done, fn returns an error or
// the connection closes. Events after lastEventID are replayed first.
func (c *Client) Watch(ctx context.Context, lastEventID uint64, fn func(Event) error) error {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/api/v1/ws"

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPClient: c.wsHTTPClient()})
	if err != nil {
		return fmt.Errorf("dial event stream: %w", err)
	}
	defer conn.CloseNow() //nolint:errcheck // best-effort close

	sub := map[string]any{"type": "subscribe", "last_event_id": lastEventID}
	if err := wsjson.Write(ctx, conn, sub); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	for {
		var evt Event
		if err := wsjson.Read(ctx, conn, &evt); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		}

		switch evt.Type {
		case "reset":
			return ErrStreamReset
		case "shutdown":
			return nil
		}

		if err := fn(evt); err != nil {
			return err
		}
	}
}

// wsHTTPClient drops the request timeout, which would otherwise cut long-lived streams.
func (c *Client) wsHTTPClient() *http.Client {
	hc := *c.httpClient
	hc.Timeout = 0
	return &hc
}
