package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/flicknfire/parameter"
)

// PeerID uniquely identifies a connected client
type PeerID uint32

// Peer is one websocket client
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano
	Dropped  atomic.Int64 // Frames skipped on a full send queue

	conn   *websocket.Conn
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, queue int) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, queue),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a binary frame, false when closed or the queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close tears the connection down once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// readLoop delivers text frames until the connection fails
func (p *Peer) readLoop(handle func(*Peer, []byte)) {
	defer p.Close()

	p.conn.SetReadLimit(parameter.NetworkReadLimit)
	_ = p.conn.SetReadDeadline(time.Now().Add(parameter.NetworkPongWait))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(parameter.NetworkPongWait))
	})

	for {
		msgType, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
		_ = p.conn.SetReadDeadline(time.Now().Add(parameter.NetworkPongWait))
		if msgType != websocket.TextMessage {
			continue
		}
		handle(p, data)
	}
}

// writeLoop drains the send queue and keeps the connection alive with pings
func (p *Peer) writeLoop() {
	defer p.Close()

	ping := time.NewTicker(parameter.NetworkPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			_ = p.conn.SetWriteDeadline(time.Now().Add(parameter.NetworkWriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ping.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(parameter.NetworkWriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
