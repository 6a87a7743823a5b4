package websocketPkg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shuvo881/virtual-try-on/internal/entity"
)

// ILandmarkDetector is the client for the external face-mesh landmark
// service. The service decodes the submitted frame, locates faces and
// answers with normalized landmark arrays; all geometry derivation
// happens on our side.
type ILandmarkDetector interface {
	DetectLandmarks(frame []byte) (*entity.LandmarkFrame, error)
	IsConnected() bool
	Reconnect() error
	CloseConnection()
}

type landmarkClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewLandmarkDetector() ILandmarkDetector {
	client := &landmarkClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to landmark service failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to landmark service")
		}
	}()

	return client
}

func (c *landmarkClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *landmarkClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("AI_FACE_LANDMARK_URL")
	if url == "" {
		url = "ws://localhost:8000/api/v1/landmarks/ws"
	}

	log.Printf("Connecting to landmark service at %s", url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn
	go c.keepAlive()

	return nil
}

func (c *landmarkClient) CloseConnection() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *landmarkClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping to landmark service failed, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *landmarkClient) getConnection() (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("not connected to landmark service")
	}

	return c.conn, nil
}

// DetectLandmarks submits one binary image frame and waits for the
// landmark reply. Callers own the timeout policy around this call.
func (c *landmarkClient) DetectLandmarks(frame []byte) (*entity.LandmarkFrame, error) {
	conn, err := c.getConnection()
	if err != nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("cannot connect to landmark service: %w", err)
		}
		conn, err = c.getConnection()
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	log.Printf("Sending frame of size: %d bytes", len(frame))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending frame: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading landmark reply: %w", err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var result entity.LandmarkFrame
	if err := json.Unmarshal(message, &result); err != nil {
		return nil, fmt.Errorf("error unmarshaling landmark reply: %w", err)
	}

	log.Printf("Landmark reply: %d face(s) in %dx%d frame",
		len(result.Faces), result.ImageWidth, result.ImageHeight)

	return &result, nil
}
