package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSequenceLength(t *testing.T) {
	tests := []struct {
		name  string
		notes []note
	}{
		{name: "eat", notes: eatCue},
		{name: "crash", notes: crashCue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := sequence(tc.notes)
			if err != nil {
				t.Fatalf("sequence: %v", err)
			}
			var want int
			for _, n := range tc.notes {
				want += sampleRate.N(n.dur)
			}
			if got := countSamples(s); got != want {
				t.Fatalf("samples = %d, want %d", got, want)
			}
		})
	}
}

func TestSequenceRejectsBadFrequency(t *testing.T) {
	// Above Nyquist for 44.1kHz.
	if _, err := sequence([]note{{30000, time.Millisecond}}); err == nil {
		t.Fatal("expected an error for a tone above the Nyquist frequency")
	}
}

func TestPlayerCues(t *testing.T) {
	var played []beep.Streamer
	p := Silent()
	p.enabled = true
	p.play = func(s beep.Streamer) { played = append(played, s) }

	p.Ate(1)
	p.Crashed(1)
	if len(played) != 2 {
		t.Fatalf("played %d cues, want 2", len(played))
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	p.play = func(beep.Streamer) { t.Fatal("silent player made a sound") }
	p.Ate(3)
	p.Crashed(3)
	p.Close()
}
