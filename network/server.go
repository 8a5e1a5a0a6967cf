// Package network serves pose input and game state over websocket
// Clients send JSON pose frames and commands, the server pushes msgpack snapshots and notifications
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/game"
	"github.com/lixenwraith/flicknfire/gesture"
	"github.com/lixenwraith/flicknfire/parameter"
)

// Controls is the part of the game remote clients drive
type Controls interface {
	Frame(f gesture.Frame)
	Snapshot() game.Snapshot
	Restart()
	Purchase(kind component.UpgradeKind) bool
	Pause()
	Resume()
}

// Config controls the listener and broadcast cadence
type Config struct {
	Address           string
	BroadcastInterval time.Duration
	MaxPeers          int
	SendQueueSize     int
}

// DefaultConfig returns the stock server settings
func DefaultConfig() Config {
	return Config{
		Address:           parameter.NetworkAddress,
		BroadcastInterval: parameter.NetworkBroadcastInterval,
		MaxPeers:          parameter.NetworkMaxPeers,
		SendQueueSize:     parameter.NetworkSendQueue,
	}
}

// Server accepts websocket clients on /ws
// Pose frames drive the simulation, so only one peer at a time is the pose source
type Server struct {
	cfg  Config
	game Controls
	log  zerolog.Logger

	upgrader websocket.Upgrader

	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	reserved int    // Admitted slots still upgrading, guarded by mu
	poseFrom PeerID // Zero while no peer owns pose input, guarded by mu
	nextID   atomic.Uint32
	seq      atomic.Uint32

	rejected     atomic.Int64
	ignoredPoses atomic.Int64
}

// NewServer creates a server, zero config fields take defaults
func NewServer(g Controls, cfg Config, log zerolog.Logger) *Server {
	def := DefaultConfig()
	if cfg.Address == "" {
		cfg.Address = def.Address
	}
	if cfg.BroadcastInterval <= 0 {
		cfg.BroadcastInterval = def.BroadcastInterval
	}
	if cfg.MaxPeers <= 0 {
		cfg.MaxPeers = def.MaxPeers
	}
	if cfg.SendQueueSize <= 0 {
		cfg.SendQueueSize = def.SendQueueSize
	}
	return &Server{
		cfg:  cfg,
		game: g,
		log:  log.With().Str("component", "network").Logger(),
		upgrader: websocket.Upgrader{
			// Pose pipelines run in local browser pages
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[PeerID]*Peer),
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Serve listens until ctx is cancelled, broadcasting snapshots meanwhile
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: parameter.NetworkWriteTimeout,
	}

	go s.RunBroadcast(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.NetworkWriteTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.Close()
	}()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("pose server listening")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// RunBroadcast pushes a snapshot to every client at the broadcast interval
func (s *Server) RunBroadcast(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.BroadcastInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.PeerCount() == 0 {
				continue
			}
			if err := s.BroadcastSnapshot(); err != nil {
				s.log.Error().Err(err).Msg("snapshot broadcast failed")
			}
		}
	}
}

// BroadcastSnapshot encodes the current state once and queues it for every client
func (s *Server) BroadcastSnapshot() error {
	snap := s.game.Snapshot()
	data, err := msgpack.Marshal(&ServerMessage{
		Type:     MsgStateSync,
		Seq:      s.seq.Add(1),
		Snapshot: &snap,
	})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.broadcast(data)
	return nil
}

// OnEvent implements game.Listener, forwarding notifications to clients
func (s *Server) OnEvent(ev event.GameEvent) {
	if s.PeerCount() == 0 {
		return
	}
	data, err := msgpack.Marshal(&ServerMessage{
		Type:    MsgEvent,
		Seq:     s.seq.Add(1),
		Event:   ev.Type.String(),
		Payload: ev.Payload,
	})
	if err != nil {
		s.log.Error().Err(err).Stringer("event", ev.Type).Msg("event encode failed")
		return
	}
	s.broadcast(data)
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.peers {
		p.Send(data)
	}
}

// PeerCount returns connected client count
func (s *Server) PeerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

// Rejected returns connections refused at the peer limit
func (s *Server) Rejected() int64 {
	return s.rejected.Load()
}

// IgnoredPoses returns pose frames dropped because another peer owns pose input
func (s *Server) IgnoredPoses() int64 {
	return s.ignoredPoses.Load()
}

// PoseSource returns the peer whose pose frames drive the game, zero when none
func (s *Server) PoseSource() PeerID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.poseFrom
}

// Close disconnects every client
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.peers {
		p.Close()
	}
	s.peers = make(map[PeerID]*Peer)
	s.poseFrom = 0
}

// reserve claims a peer slot ahead of the upgrade, false at the limit
func (s *Server) reserve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.peers)+s.reserved >= s.cfg.MaxPeers {
		return false
	}
	s.reserved++
	return true
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if !s.reserve() {
		s.rejected.Add(1)
		http.Error(w, "too many clients", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.mu.Lock()
		s.reserved--
		s.mu.Unlock()
		s.log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	p := newPeer(PeerID(s.nextID.Add(1)), conn, s.cfg.SendQueueSize)
	s.mu.Lock()
	s.reserved--
	s.peers[p.ID] = p
	s.mu.Unlock()
	s.log.Info().Uint32("peer", uint32(p.ID)).Str("remote", p.Addr).Msg("client connected")

	go p.writeLoop()
	p.readLoop(s.handleMessage)

	s.mu.Lock()
	delete(s.peers, p.ID)
	if s.poseFrom == p.ID {
		s.poseFrom = 0
	}
	s.mu.Unlock()
	s.log.Info().Uint32("peer", uint32(p.ID)).Int64("dropped", p.Dropped.Load()).Msg("client disconnected")
}

// claimPose makes p the pose source when none is set, false when another peer owns it
func (s *Server) claimPose(p *Peer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.poseFrom {
	case p.ID:
		return true
	case 0:
		s.poseFrom = p.ID
		s.log.Info().Uint32("peer", uint32(p.ID)).Msg("pose source assigned")
		return true
	}
	return false
}

// handleMessage applies one client frame, malformed frames are logged and skipped
func (s *Server) handleMessage(p *Peer, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.log.Debug().Err(err).Uint32("peer", uint32(p.ID)).Msg("malformed client message")
		return
	}

	switch msg.Type {
	case ClientPose:
		f, err := msg.ToFrame()
		if err != nil {
			s.log.Debug().Err(err).Uint32("peer", uint32(p.ID)).Msg("invalid pose frame")
			return
		}
		if !s.claimPose(p) {
			s.ignoredPoses.Add(1)
			return
		}
		s.game.Frame(f)
	case ClientRestart:
		s.game.Restart()
	case ClientPurchase:
		kind, err := msg.UpgradeKind()
		if err != nil {
			s.log.Debug().Err(err).Uint32("peer", uint32(p.ID)).Msg("invalid purchase")
			return
		}
		s.game.Purchase(kind)
	case ClientPause:
		s.game.Pause()
	case ClientResume:
		s.game.Resume()
	default:
		s.log.Debug().Str("type", msg.Type).Uint32("peer", uint32(p.ID)).Msg("unknown client message")
	}
}
