package audio

import (
	"math"
	"testing"
)

func drain(v *impactVoice) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := v.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestImpactVoiceLength(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
		wantMS   float64
	}{
		{"soft", 0, 80},
		{"medium", 0.5, 140},
		{"hard", 1, 200},
		{"clamped high", 3, 200},
		{"clamped low", -1, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newImpactVoice(tt.strength, 1, sampleRate)
			got := drain(v)
			want := int(float64(sampleRate) * tt.wantMS / 1000)
			if len(got) != want {
				t.Fatalf("voice produced %d samples, want %d", len(got), want)
			}
		})
	}
}

func TestImpactVoiceBounded(t *testing.T) {
	v := newImpactVoice(1, 1, sampleRate)
	for i, s := range drain(v) {
		if s < -1 || s > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestImpactVoiceDecays(t *testing.T) {
	v := newImpactVoice(0.8, 1, sampleRate)
	out := drain(v)

	peak := 0.0
	for _, s := range out[:len(out)/4] {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	tail := 0.0
	for _, s := range out[len(out)-len(out)/10:] {
		if a := math.Abs(s); a > tail {
			tail = a
		}
	}
	if peak == 0 {
		t.Fatal("voice is silent")
	}
	if tail > peak*0.2 {
		t.Fatalf("tail did not decay: peak %v tail %v", peak, tail)
	}
}

func TestImpactVoiceStreamAfterDone(t *testing.T) {
	v := newImpactVoice(0.1, 1, sampleRate)
	drain(v)

	buf := make([][2]float64, 16)
	n, ok := v.Stream(buf)
	if n != 0 || ok {
		t.Fatalf("finished voice streamed n=%d ok=%v, want 0 false", n, ok)
	}
}

func TestManagerNoOpWithoutInit(t *testing.T) {
	m := NewManager(0.6)
	m.PlayImpact(0.5)
	m.Cleanup()
	if m.Muted() {
		t.Fatal("fresh manager should not be muted")
	}
	if muted := m.ToggleMute(); !muted {
		t.Fatal("ToggleMute should report muted")
	}
	m.PlayImpact(0.5)
}

func TestManagerNilReceiver(t *testing.T) {
	var m *Manager
	if err := m.Initialize(); err != nil {
		t.Fatalf("nil manager Initialize: %v", err)
	}
	m.PlayImpact(1)
	m.SetMuted(false)
	if !m.Muted() {
		t.Fatal("nil manager should report muted")
	}
	m.Cleanup()
}

func TestNewManagerClampsVolume(t *testing.T) {
	loud := NewManager(4)
	if loud.volume != 1 {
		t.Fatalf("volume = %v, want 1", loud.volume)
	}
	quiet := NewManager(-2)
	if quiet.volume != 0 {
		t.Fatalf("volume = %v, want 0", quiet.volume)
	}
}
