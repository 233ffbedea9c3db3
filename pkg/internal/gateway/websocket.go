package gateway

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// the time after which a write times out
	writeTimeout = 10 * time.Second

	// the timeout after which a ping is sent to keep the connection alive
	pingTimeout = 45 * time.Second

	// the timeout after a connection is closed when there is no traffic
	receiveTimeout = 90 * time.Second
)

// Handler returns the fiber handler serving the subscription transport.
// The credential is taken before the upgrade by the auth middleware and
// stashed in locals; an invalid one still gets a connection, just a silent
// one.
func (g *Gateway) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		token, _ := conn.Locals("token").(string)

		c := g.Connect(token)
		defer c.Close()

		if err := g.pump(conn, c); err != nil {
			log.Debug().Err(err).Msg("Subscription connection closed.")
		}
	})
}

func (g *Gateway) pump(conn *websocket.Conn, c *Connection) error {
	_ = conn.SetReadDeadline(time.Now().Add(receiveTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(receiveTimeout))
	})

	// run reader; we expect no requests, it only surfaces the close
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case evt, ok := <-c.Events():
			if !ok {
				return nil
			}

			envelope, allowed := c.Admit(evt)
			if !allowed {
				continue
			}

			bytes, err := json.Marshal(envelope)
			if err != nil {
				return err
			}

			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return err
			}
			if err := conn.WriteMessage(websocket.TextMessage, bytes); err != nil {
				return err
			}
		case <-time.After(pingTimeout):
			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return err
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				return nil
			}
			return err
		}
	}
}
