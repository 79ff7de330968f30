package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chord intervals relative to the root: root, major third, fifth, octave.
var chord = []float64{1, 5.0 / 4, 3.0 / 2, 2}

// Tone describes a short generated sound.
type Tone struct {
	Freq     float64       // Root frequency in Hz
	Duration time.Duration // Total length
	Decay    float64       // Exponential decay rate; 0 uses a linear release
	Chord    bool          // Layer the major chord on top of the root
}

// Streamer returns a finite streamer rendering t at sample rate sr.
// Output is mono duplicated to both channels and stays within [-1, 1].
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(t.Duration)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			s := t.sample(float64(pos)/float64(sr), float64(pos)/float64(total))
			samples[i][0] = s
			samples[i][1] = s
			pos++
		}
		return len(samples), true
	})
}

// sample computes one sample at time sec, with progress p in [0, 1).
func (t Tone) sample(sec, p float64) float64 {
	var s float64
	if t.Chord {
		for i, ratio := range chord {
			s += math.Sin(2*math.Pi*t.Freq*ratio*sec) * 0.25 / float64(i+1)
		}
	} else {
		s = 0.5 * math.Sin(2*math.Pi*t.Freq*sec)
	}

	return s * t.envelope(p) * 0.6
}

// envelope shapes the amplitude over progress p.
func (t Tone) envelope(p float64) float64 {
	// Short attack avoids clicks at the start.
	attack := math.Min(p/0.02, 1)
	if t.Decay > 0 {
		return attack * math.Exp(-t.Decay*p)
	}
	return attack * (1 - p)
}

// clickStreamer renders the menu click: a crisp high blip over a low thump.
func clickStreamer(sr beep.SampleRate) beep.Streamer {
	total := sr.N(80 * time.Millisecond)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			p := float64(pos) / float64(total)
			click := math.Sin(2*math.Pi*2000*p) * math.Exp(-30*p)
			thump := math.Sin(2*math.Pi*300*p) * math.Exp(-50*p) * 0.5
			s := (click + thump) * 0.6
			samples[i][0] = s
			samples[i][1] = s
			pos++
		}
		return len(samples), true
	})
}
