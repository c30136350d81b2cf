package main

import (
	progressclock "github.com/Mictilt/progress-clock"
	"github.com/Mictilt/progress-clock/writer/standard"
)

func save(filename string, spec progressclock.ClockSpec, opts ...standard.ImageOption) {
	w, err := standard.New(filename, opts...)
	if err != nil {
		panic(err)
	}
	if _, err = w.Write(spec); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}

func main() {
	// a four section clock, one section done
	spec, err := progressclock.Validate(4, 1, progressclock.DefaultColor, progressclock.DefaultSize, false)
	if err != nil {
		panic(err)
	}
	save("./clock_4_1.svg", spec)

	// the same clock as a ring, with a custom color
	spec, err = progressclock.Validate(8, 5, "4071af", progressclock.DefaultSize, true)
	if err != nil {
		panic(err)
	}
	save("./clock_ring_8_5.svg", spec)

	// a large clock with integer coordinates only
	spec, err = progressclock.Validate(12, 7, "#a33", 600, true)
	if err != nil {
		panic(err)
	}
	save("./clock_ring_12_7.svg", spec,
		standard.WithPrecision(0),
		standard.WithMaskID("hole"),
	)

	println("SVG files created successfully!")
}
