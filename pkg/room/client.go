package room

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a player connected to a room via websockets
// Websocket pushes are an optional extra; polling GET /state works without
// one.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	playerID int64
	username string
	room     *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64, username string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
		username: username,
	}
}

// Send sends a message to the web client
// Returns false if the client's buffer is full and the message was dropped;
// the next poll or push will carry a fresher snapshot anyway.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	room := "?"
	if c.room != nil {
		room = c.room.UUID
	}

	return fmt.Sprintf("%s:%s", c.username, room)
}
