package web

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"worldcup-service/logger"
	"worldcup-service/metrics"
	"worldcup-service/services"
)

// WSMessage is the frame exchanged with dashboard clients.
type WSMessage struct {
	Type      string      `json:"type"`
	Year      int         `json:"year,omitempty"`
	Team      string      `json:"team,omitempty"`
	TeamB     string      `json:"team_b,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Client is one connected dashboard.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// Hub tracks connected clients and answers their selection messages
// with recomputed aggregates.
// The clients map is only touched from Run's goroutine.
type Hub struct {
	stats      *services.StatsService
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

// NewHub creates a hub over the given stats service.
func NewHub(stats *services.StatsService) *Hub {
	return &Hub{
		stats:      stats,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister events until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			metrics.WSClients.Set(float64(len(h.clients)))
			logger.Printf("Client %s registered. Total clients: %d", client.id, len(h.clients))

			client.sendMessage(h.welcomeMessage())

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			metrics.WSClients.Set(float64(len(h.clients)))
			logger.Printf("Client %s unregistered. Total clients: %d", client.id, len(h.clients))
		}
	}
}

func (h *Hub) welcomeMessage() *WSMessage {
	d := h.stats.Dataset()
	return &WSMessage{
		Type:      "connected",
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"years": d.Years(),
			"teams": d.Teams(),
		},
	}
}

// handleSelect computes the aggregates for a client selection. Year
// alone gets the tournament view, year+team the journey, team+team_b
// the head-to-head record.
func (h *Hub) handleSelect(msg *WSMessage) *WSMessage {
	switch {
	case msg.Team != "" && msg.TeamB != "":
		result, err := h.stats.HeadToHead(msg.Team, msg.TeamB)
		if err != nil {
			return errorMessage(err)
		}
		return &WSMessage{Type: "head_to_head", Team: msg.Team, TeamB: msg.TeamB, Data: result}

	case msg.Team != "" && msg.Year != 0:
		journey, err := h.stats.TeamJourney(msg.Year, msg.Team)
		if err != nil {
			return errorMessage(err)
		}
		return &WSMessage{Type: "team_journey", Year: msg.Year, Team: msg.Team, Data: journey}

	case msg.Year != 0:
		summary, err := h.stats.TournamentSummary(msg.Year)
		if err != nil {
			return errorMessage(err)
		}
		matches, err := h.stats.TournamentMatches(msg.Year)
		if err != nil {
			return errorMessage(err)
		}
		return &WSMessage{Type: "tournament", Year: msg.Year, Data: map[string]interface{}{
			"summary": summary,
			"matches": matches,
		}}

	default:
		return errorMessage(services.ErrInvalidInput)
	}
}

func errorMessage(err error) *WSMessage {
	msg := &WSMessage{Type: "error", Error: err.Error()}
	if errors.Is(err, services.ErrNotFound) {
		msg.Type = "not_found"
	}
	return msg
}

func marshalMessage(message *WSMessage) []byte {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Errorf("Failed to marshal message: %v", err)
		return []byte("{}")
	}
	return data
}

func (c *Client) sendMessage(msg *WSMessage) {
	select {
	case c.send <- marshalMessage(msg):
	default:
	}
}

// readPump reads selection messages from the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Errorf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump writes queued messages to the client.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close()
	}()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) handleMessage(message []byte) {
	var msg WSMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		logger.Errorf("Failed to unmarshal client message: %v", err)
		return
	}

	switch msg.Type {
	case "select":
		c.sendMessage(c.hub.handleSelect(&msg))

	case "ping":
		c.sendMessage(&WSMessage{Type: "pong", Timestamp: time.Now().Unix()})

	default:
		c.sendMessage(errorMessage(services.ErrInvalidInput))
	}
}
