// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/service"
)

const (
	// authWindow is how long the client has to send the bearer frame after
	// the upgrade completes.
	authWindow = 2 * time.Second

	// pendingFrameLimit bounds how many client frames may queue up while
	// the upstream dial is still in flight. A client that floods past the
	// limit is disconnected rather than buffered without bound.
	pendingFrameLimit = 256

	// closeUnauthorized mirrors the status the header-based surface
	// answers for the same failures.
	closeUnauthorized = 401

	upstreamDialTimeout = 10 * time.Second
)

// frame is one websocket message in transit between the two legs.
type frame struct {
	messageType int
	data        []byte
}

// tunnel upgrades the request and splices the client to the upstream.
//
// The first frame must carry a bearer value under the same grammar as the
// Authorization header, within authWindow. Once the session resolves, the
// upstream leg is dialed with the original request URI, greeted with a
// "USER_ID: <id>" preamble frame, and frames are forwarded both ways. The
// session is re-checked before every upstream frame is delivered to the
// client; a revoked session withholds the frame and closes with
// closeUnauthorized.
func (h *Handler) tunnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(authWindow))
	_, first, err := conn.ReadMessage()
	if err != nil {
		log.Err(err).Msg("no bearer frame before the auth window closed")
		writeClose(conn, closeUnauthorized)
		return
	}

	claim, token, err := h.services.SessionService.Resolve(ctx, string(first))
	if err != nil {
		log.Err(err).Msg("websocket session rejected")
		writeClose(conn, closeUnauthorized)
		return
	}
	conn.SetReadDeadline(time.Time{})

	// The client may start streaming immediately after the bearer frame,
	// before the upstream leg exists. A dedicated reader buffers those
	// frames; the same reader keeps feeding the forward loop afterwards.
	pending := make(chan frame, pendingFrameLimit)
	readErr := make(chan error, 1)
	go func() {
		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case pending <- frame{messageType: messageType, data: data}:
			default:
				readErr <- errors.New("pending frame limit exceeded before upstream was ready")
				return
			}
		}
	}()

	dialer := websocket.Dialer{HandshakeTimeout: upstreamDialTimeout}
	upstream, resp, err := dialer.DialContext(ctx, "ws://"+h.proxiedHost+r.URL.RequestURI(), nil)
	if err != nil {
		log.Err(err).Str("uri", r.RequestURI).Msg("upstream websocket dial failed")
		writeClose(conn, websocket.CloseInternalServerErr)
		return
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	defer upstream.Close()

	// Identity preamble: the upstream learns who is on the line from the
	// very first frame and never sees the token.
	if err := upstream.WriteMessage(websocket.TextMessage, []byte("USER_ID: "+claim.UserID)); err != nil {
		log.Err(err).Msg("error sending identity preamble upstream")
		writeClose(conn, websocket.CloseInternalServerErr)
		return
	}

	errc := make(chan error, 2)

	go func() {
		for {
			select {
			case f := <-pending:
				if err := upstream.WriteMessage(f.messageType, f.data); err != nil {
					errc <- err
					return
				}
			case err := <-readErr:
				// Frames the client queued before going away still belong
				// upstream, in order. Drain them before reporting the error.
				for {
					select {
					case f := <-pending:
						if werr := upstream.WriteMessage(f.messageType, f.data); werr != nil {
							errc <- werr
							return
						}
					default:
						errc <- err
						return
					}
				}
			}
		}
	}()

	go func() {
		for {
			messageType, data, err := upstream.ReadMessage()
			if err != nil {
				errc <- err
				return
			}

			alive, err := h.services.SessionService.Alive(ctx, token)
			if err != nil || !alive {
				// The frame is withheld: nothing may reach the client
				// after revocation.
				writeClose(conn, closeUnauthorized)
				errc <- service.ErrUnauthorized
				return
			}

			if err := conn.WriteMessage(messageType, data); err != nil {
				errc <- err
				return
			}
		}
	}()

	err = <-errc

	// A clean close from one leg is mirrored to the other, code included.
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		message := websocket.FormatCloseMessage(closeErr.Code, closeErr.Text)
		deadline := time.Now().Add(time.Second)
		conn.WriteControl(websocket.CloseMessage, message, deadline)
		upstream.WriteControl(websocket.CloseMessage, message, deadline)
		return
	}

	log.Err(err).Str("userID", claim.UserID).Msg("websocket tunnel closed")
}

// writeClose sends a close frame with the given code, best effort.
func writeClose(conn *websocket.Conn, code int) {
	message := websocket.FormatCloseMessage(code, "")
	conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
}
