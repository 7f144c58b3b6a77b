// Package web streams ensemble frames to browser renderers over a websocket.
// A single driver goroutine owns the population: it alternates batch steps
// with frame broadcasts, so clients never observe a mid-batch state.
package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seralo/chaoscope/internal/pendulum"
	"github.com/seralo/chaoscope/internal/viz"
)

const (
	frameInterval = time.Second / 60
	sendBuffer    = 8
	writeTimeout  = 5 * time.Second
)

// Frame is one rendered snapshot of the population. Bobs holds
// [xA, yA, xB, yB] per trajectory in population order; Hues holds the
// divergence-derived hue (degrees) per trajectory, both indexed identically.
type Frame struct {
	T    float64      `json:"t"`
	Bobs [][4]float64 `json:"bobs"`
	Hues []float64    `json:"hues"`
}

type Server struct {
	pop           *pendulum.Population
	dt            float64
	stepsPerFrame int

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan *Frame
}

func NewServer(pop *pendulum.Population, dt float64, stepsPerFrame int) *Server {
	return &Server{
		pop:           pop,
		dt:            dt,
		stepsPerFrame: stepsPerFrame,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ListenAndServe runs the HTTP server and the simulation driver until ctx is
// canceled or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)

	srv := &http.Server{Addr: addr, Handler: mux}

	go s.drive(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// drive is the only goroutine that mutates the population. Cancellation is
// honored between batch-step calls, never mid-batch.
func (s *Server) drive(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pop.StepAllN(s.dt, s.stepsPerFrame)
			t += s.dt * float64(s.stepsPerFrame)
			s.broadcast(s.buildFrame(t))
		}
	}
}

func (s *Server) buildFrame(t float64) *Frame {
	pa, pb := s.pop.PendulumA(), s.pop.PendulumB()
	trajs := s.pop.Trajectories()
	ref := trajs[0]

	frame := &Frame{
		T:    t,
		Bobs: make([][4]float64, len(trajs)),
		Hues: make([]float64, len(trajs)),
	}
	for i, traj := range trajs {
		bobA, bobB := traj.Positions(pa, pb)
		frame.Bobs[i] = [4]float64{bobA.X, bobA.Y, bobB.X, bobB.Y}

		d, err := ref.Divergence(traj)
		if err != nil {
			// Invariant violation: surface as fully diverged rather than
			// dropping the frame.
			d = 1
		}
		frame.Hues[i] = viz.DivergenceHue(d)
	}
	return frame
}

func (s *Server) broadcast(frame *Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
			// Slow client: skip this frame rather than stall the driver.
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan *Frame, sendBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writePump(c)
	s.readPump(c)
}

func (s *Server) writePump(c *client) {
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteJSON(frame); err != nil {
			break
		}
	}
	c.conn.Close()
}

// readPump discards client messages; it exists to detect disconnects.
func (s *Server) readPump(c *client) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		close(c.send)
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}
