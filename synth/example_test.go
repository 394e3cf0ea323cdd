// SPDX-License-Identifier: EPL-2.0

package synth_test

import (
	"fmt"

	"github.com/developersailor/SoundCanvas/synth"
)

// ExampleGenerate renders a tenth of a second of a 440Hz sine wave.
func ExampleGenerate() {
	spec := synth.NewSignalSpec(synth.Sine, 440, 1)
	spec.SampleRate = 1000
	spec.Duration = 0.1

	samples, err := synth.Generate(spec)
	if err != nil {
		fmt.Println("generate error:", err)
		return
	}

	fmt.Printf("%d samples, first = %v\n", len(samples), samples[0])
	// Output: 100 samples, first = 0
}

// ExampleParseShape resolves a shape by the name a caller would read from a
// preset or request.
func ExampleParseShape() {
	shape, err := synth.ParseShape("triangle")
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	fmt.Println(shape)
	// Output: triangle
}

// ExampleNewOsc streams a square wave into a fixed-size render buffer.
func ExampleNewOsc() {
	osc, err := synth.NewOsc(synth.NewSignalSpec(synth.Square, 440, 1))
	if err != nil {
		fmt.Println("oscillator error:", err)
		return
	}
	defer osc.Close()

	buf := make([]float32, 512)
	n, _ := osc.ReadSamples(buf)
	fmt.Printf("read %d samples at %d Hz\n", n, osc.SampleRate())
	// Output: read 512 samples at 44100 Hz
}
