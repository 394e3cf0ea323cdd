// SPDX-License-Identifier: EPL-2.0

package vizstate

// defaultNotes is the frequency cycle used when a caller supplies none: a
// rising C major arpeggio.
var defaultNotes = []float64{261.63, 329.63, 392.00, 523.25}

// Simulated fabricates Level snapshots from a beat grid, with no audio
// behind them. The frequency steps to the next note on every beat and the
// amplitude decays linearly over the beat, which reads as a pulse.
//
// LevelAt is a pure function of the frame index: the same index always
// yields the same snapshot. Callers that want the pattern tied to the clock
// add their own frame offset.
type Simulated struct {
	bpm       float64
	frameRate float64
	amplitude float64
	notes     []float64
	frame     int64
}

// NewSimulated builds a pattern at bpm beats per minute, sampled frameRate
// times per second, peaking at amplitude. An empty notes slice selects the
// default arpeggio.
func NewSimulated(bpm, frameRate, amplitude float64, notes []float64) *Simulated {
	if len(notes) == 0 {
		notes = defaultNotes
	}
	return &Simulated{
		bpm:       bpm,
		frameRate: frameRate,
		amplitude: amplitude,
		notes:     notes,
	}
}

// LevelAt returns the snapshot for an absolute frame index.
func (s *Simulated) LevelAt(frame int64) Level {
	beats := float64(frame) / s.frameRate * s.bpm / 60
	beat := int64(beats)
	phase := beats - float64(beat) // position within the beat, [0, 1)

	return Level{
		Amplitude: s.amplitude * (1 - phase),
		Frequency: s.notes[beat%int64(len(s.notes))],
		Playing:   true,
	}
}

// Next returns the snapshot for the current frame and advances.
func (s *Simulated) Next() Level {
	level := s.LevelAt(s.frame)
	s.frame++
	return level
}

// Reset rewinds the pattern to its first frame.
func (s *Simulated) Reset() { s.frame = 0 }
