package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/flicknfire/component"
	"github.com/lixenwraith/flicknfire/event"
	"github.com/lixenwraith/flicknfire/parameter"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1.0 || buf[i][0] > 1.0 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, osc, rate.N(time.Second)); got != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), got)
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, 44100)
	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("expected 50 samples, got %d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("square sample %d should be -1 or 1, got %f", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= 0.5 {
		t.Errorf("expected release tail, got %f", samples[99][0])
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		typ  event.EventType
		want Cue
	}{
		{event.EventFireCue, CueSpark},
		{event.EventTargetHit, CueCoin},
		{event.EventBonusHit, CueBonus},
		{event.EventHazardExploded, CueExplosion},
		{event.EventBossDamaged, CueBossHit},
		{event.EventBossVictory, CueFanfare},
		{event.EventGameOver, CueGameOver},
		{event.EventScoreChanged, CueNone},
	}
	for _, tt := range tests {
		if got := CueFor(event.GameEvent{Type: tt.typ}); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.typ, tt.want, got)
		}
	}
}

func TestSynthesizeEveryCue(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	ev := event.GameEvent{Payload: &event.TargetPayload{Coin: component.CoinGold}}
	for c := CueSpark; c < cueCount; c++ {
		s := Synthesize(c, ev, rate, 0.5)
		if s == nil {
			t.Errorf("%s: expected a streamer", c)
			continue
		}
		if n := drain(t, s, rate.N(5*time.Second)); n == 0 {
			t.Errorf("%s: expected audible samples", c)
		}
	}
	if Synthesize(CueNone, ev, rate, 0.5) != nil {
		t.Error("expected nil streamer for CueNone")
	}
}

func TestGameOverLength(t *testing.T) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	s := Synthesize(CueGameOver, event.GameEvent{}, rate, 1)
	want := 4 * rate.N(parameter.GameOverNoteGap)
	got := drain(t, s, rate.N(5*time.Second))
	if diff := got - want; diff < -4 || diff > 4 {
		t.Errorf("expected about %d samples, got %d", want, got)
	}
}
