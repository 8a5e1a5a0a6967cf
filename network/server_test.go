package network

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
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

type fakeGame struct {
	mu        sync.Mutex
	frames    []gesture.Frame
	purchases []component.UpgradeKind
	restarts  int
	calls     chan string
}

func newFakeGame() *fakeGame {
	return &fakeGame{calls: make(chan string, 16)}
}

func (f *fakeGame) Frame(fr gesture.Frame) {
	f.mu.Lock()
	f.frames = append(f.frames, fr)
	f.mu.Unlock()
	f.calls <- ClientPose
}

func (f *fakeGame) Snapshot() game.Snapshot {
	return game.Snapshot{Width: 1280, Height: 720, Score: 17, Lives: 2}
}

func (f *fakeGame) Restart() {
	f.mu.Lock()
	f.restarts++
	f.mu.Unlock()
	f.calls <- ClientRestart
}

func (f *fakeGame) Purchase(kind component.UpgradeKind) bool {
	f.mu.Lock()
	f.purchases = append(f.purchases, kind)
	f.mu.Unlock()
	f.calls <- ClientPurchase
	return true
}

func (f *fakeGame) Pause()  { f.calls <- ClientPause }
func (f *fakeGame) Resume() { f.calls <- ClientResume }

func (f *fakeGame) wait(t *testing.T, want string) {
	t.Helper()
	select {
	case got := <-f.calls:
		if got != want {
			t.Fatalf("expected call %s, got %s", want, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func startServer(t *testing.T, cfg Config) (*Server, *fakeGame, string) {
	t.Helper()
	g := newFakeGame()
	s := NewServer(g, cfg, zerolog.Nop())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		s.Close()
		ts.Close()
	})
	return s, g, "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func waitPeers(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.PeerCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d peers, got %d", n, s.PeerCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func send(t *testing.T, c *websocket.Conn, msg any) {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readServer(t *testing.T, c *websocket.Conn) ServerMessage {
	t.Helper()
	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := c.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("expected binary frame, got %d", msgType)
	}
	var msg ServerMessage
	if err := msgpack.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return msg
}

func hand(label string) HandMessage {
	return HandMessage{Label: label, Landmarks: make([]gesture.Landmark, parameter.LandmarkCount)}
}

// handAt is hand with one landmark replaced
func handAt(label string, idx int, l gesture.Landmark) HandMessage {
	h := hand(label)
	h.Landmarks[idx] = l
	return h
}

func TestPoseFrameReachesGame(t *testing.T) {
	_, g, url := startServer(t, Config{})
	c := dial(t, url)

	send(t, c, ClientMessage{Type: ClientPose, Hands: []HandMessage{hand("Left"), hand("right")}})
	g.wait(t, ClientPose)

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) != 1 || len(g.frames[0].Hands) != 2 {
		t.Fatalf("expected one frame with two hands, got %+v", g.frames)
	}
	if g.frames[0].Hands[0].Label != gesture.HandLeft || g.frames[0].Hands[1].Label != gesture.HandRight {
		t.Errorf("unexpected labels %v %v", g.frames[0].Hands[0].Label, g.frames[0].Hands[1].Label)
	}
}

func TestMalformedMessagesSkipped(t *testing.T) {
	_, g, url := startServer(t, Config{})
	c := dial(t, url)

	if err := c.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	send(t, c, ClientMessage{Type: ClientPose, Hands: []HandMessage{hand("middle")}})
	send(t, c, ClientMessage{Type: ClientPurchase, Upgrade: "laser"})
	send(t, c, ClientMessage{Type: ClientPurchase, Upgrade: "burst"})
	g.wait(t, ClientPurchase)

	send(t, c, ClientMessage{Type: ClientRestart})
	g.wait(t, ClientRestart)

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.frames) != 0 {
		t.Errorf("invalid pose should be skipped, got %d frames", len(g.frames))
	}
	if len(g.purchases) != 1 || g.purchases[0] != component.UpgradeBurst {
		t.Errorf("expected one burst purchase, got %v", g.purchases)
	}
}

func TestBroadcastSnapshot(t *testing.T) {
	s, _, url := startServer(t, Config{})
	c := dial(t, url)
	waitPeers(t, s, 1)

	if err := s.BroadcastSnapshot(); err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	msg := readServer(t, c)
	if msg.Type != MsgStateSync || msg.Snapshot == nil {
		t.Fatalf("expected snapshot message, got %+v", msg)
	}
	if msg.Snapshot.Score != 17 || msg.Snapshot.Lives != 2 {
		t.Errorf("unexpected snapshot %+v", msg.Snapshot)
	}
}

func TestEventForwarding(t *testing.T) {
	s, _, url := startServer(t, Config{})
	c := dial(t, url)
	waitPeers(t, s, 1)

	s.OnEvent(event.GameEvent{Type: event.EventGameOver, Payload: &event.ScorePayload{Score: 9}})
	msg := readServer(t, c)
	if msg.Type != MsgEvent || msg.Event != event.EventGameOver.String() {
		t.Errorf("expected game over event, got %+v", msg)
	}
	if msg.Seq == 0 {
		t.Error("expected sequence number")
	}
}

func TestPeerLimit(t *testing.T) {
	s, _, url := startServer(t, Config{MaxPeers: 1})
	dial(t, url)
	waitPeers(t, s, 1)

	if c, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		c.Close()
		t.Fatal("expected second client to be rejected")
	}
	if s.Rejected() != 1 {
		t.Errorf("expected 1 rejection, got %d", s.Rejected())
	}
}

func TestDisconnectRemovesPeer(t *testing.T) {
	s, _, url := startServer(t, Config{})
	c := dial(t, url)
	waitPeers(t, s, 1)

	c.Close()
	waitPeers(t, s, 0)
}

func TestToFrameValidation(t *testing.T) {
	tests := []struct {
		name string
		msg  ClientMessage
		ok   bool
	}{
		{"empty", ClientMessage{Type: ClientPose}, true},
		{"two hands", ClientMessage{Hands: []HandMessage{hand("Left"), hand("Right")}}, true},
		{"three hands", ClientMessage{Hands: []HandMessage{hand("Left"), hand("Right"), hand("Left")}}, false},
		{"bad label", ClientMessage{Hands: []HandMessage{hand("both")}}, false},
		{"short hand", ClientMessage{Hands: []HandMessage{{Label: "Left", Landmarks: make([]gesture.Landmark, 5)}}}, false},
		{"huge coordinate", ClientMessage{Hands: []HandMessage{handAt("Right", parameter.LandmarkIndexTip, gesture.Landmark{X: 1e308})}}, false},
		{"off-frame coordinate", ClientMessage{Hands: []HandMessage{handAt("Right", parameter.LandmarkWrist, gesture.Landmark{X: 0.5, Y: 2.5})}}, false},
		{"slightly off-frame", ClientMessage{Hands: []HandMessage{handAt("Right", parameter.LandmarkWrist, gesture.Landmark{X: -0.1, Y: 1.1})}}, true},
	}
	for _, tt := range tests {
		_, err := tt.msg.ToFrame()
		if (err == nil) != tt.ok {
			t.Errorf("%s: expected ok=%v, got err=%v", tt.name, tt.ok, err)
		}
	}
}

func eventually(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPeerLimitConcurrentDials(t *testing.T) {
	const attempts = 8
	s, _, url := startServer(t, Config{MaxPeers: 2})

	var (
		mu    sync.Mutex
		conns []*websocket.Conn
		wg    sync.WaitGroup
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}()
	}
	wg.Wait()
	t.Cleanup(func() {
		for _, c := range conns {
			c.Close()
		}
	})

	if len(conns) != 2 {
		t.Errorf("expected 2 admitted clients, got %d", len(conns))
	}
	if s.Rejected() != attempts-2 {
		t.Errorf("expected %d rejections, got %d", attempts-2, s.Rejected())
	}
	waitPeers(t, s, 2)
}

func TestPoseFromSinglePeer(t *testing.T) {
	s, g, url := startServer(t, Config{})
	a := dial(t, url)
	b := dial(t, url)
	waitPeers(t, s, 2)

	pose := ClientMessage{Type: ClientPose, Hands: []HandMessage{hand("Right")}}
	send(t, a, pose)
	g.wait(t, ClientPose)
	owner := s.PoseSource()
	if owner == 0 {
		t.Fatal("expected first pose sender to own pose input")
	}

	send(t, b, pose)
	eventually(t, func() bool { return s.IgnoredPoses() == 1 }, "second peer pose ignored")
	send(t, a, pose)
	g.wait(t, ClientPose)

	// Commands stay open to every peer
	send(t, b, ClientMessage{Type: ClientRestart})
	g.wait(t, ClientRestart)

	g.mu.Lock()
	frames := len(g.frames)
	g.mu.Unlock()
	if frames != 2 {
		t.Errorf("expected 2 frames from the pose source, got %d", frames)
	}

	a.Close()
	waitPeers(t, s, 1)
	eventually(t, func() bool { return s.PoseSource() == 0 }, "pose source released")

	send(t, b, pose)
	g.wait(t, ClientPose)
	if s.PoseSource() == owner || s.PoseSource() == 0 {
		t.Errorf("expected the remaining peer to take over pose input, got %d", s.PoseSource())
	}
}
