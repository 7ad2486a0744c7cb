package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"vincode/internal/system"
	"vincode/internal/terminal"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins for local dev; the server typically binds to localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// termMessage is both directions of the terminal protocol.
//
// Client -> server:
//   - {"type":"exec","line":"ls project"}
//   - {"type":"history","direction":"prev"|"next"}
//
// Plain (non-JSON) text frames are treated as exec lines.
//
// Server -> client:
//   - {"type":"output","lines":[...],"clear":bool}
//   - {"type":"input","line":"..."} after history navigation
type termMessage struct {
	Type      string   `json:"type"`
	Line      string   `json:"line,omitempty"`
	Direction string   `json:"direction,omitempty"`
	Lines     []string `json:"lines,omitempty"`
	Clear     bool     `json:"clear,omitempty"`
}

// terminalWSHandler bridges one simulated terminal session over WebSocket.
// Nothing is executed on the host.
func (s *Server) terminalWSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error.
		return
	}
	defer conn.Close()

	sess := terminal.New(s.Store.Snapshot)
	if err := conn.WriteJSON(termMessage{Type: "output", Lines: sess.Output()}); err != nil {
		return
	}
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				system.Logger.Debug("terminal websocket closed", "err", err)
			}
			return
		}
		reply, ok := handleTermMessage(sess, data)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

func handleTermMessage(sess *terminal.Session, data []byte) (termMessage, bool) {
	var msg termMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type == "" {
		msg = termMessage{Type: "exec", Line: strings.TrimRight(string(data), "\r\n")}
	}
	switch msg.Type {
	case "exec":
		res := sess.Execute(msg.Line)
		if len(res.Lines) == 0 && !res.Clear {
			return termMessage{}, false
		}
		return termMessage{Type: "output", Lines: res.Lines, Clear: res.Clear}, true
	case "history":
		var line string
		var ok bool
		if msg.Direction == "next" {
			line, ok = sess.HistoryNext()
		} else {
			line, ok = sess.HistoryPrev()
		}
		if !ok {
			return termMessage{}, false
		}
		return termMessage{Type: "input", Line: line}, true
	}
	return termMessage{}, false
}
