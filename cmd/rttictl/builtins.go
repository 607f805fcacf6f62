package main

import "github.com/langulus/rtti/synth"

// registerBuiltins synthesizes descriptors for Go's own scalar types so a
// fresh rttictl invocation (no plugin boundary loaded) has something to
// look up out of the box, the way hivectl's test fixtures ship a sample
// hive rather than requiring a real registry export on first run.
func registerBuiltins() {
	synth.Of[bool]()
	synth.Of[int]()
	synth.Of[int8]()
	synth.Of[int16]()
	synth.Of[int32]()
	synth.Of[int64]()
	synth.Of[uint]()
	synth.Of[uint8]()
	synth.Of[uint16]()
	synth.Of[uint32]()
	synth.Of[uint64]()
	synth.Of[float32]()
	synth.Of[float64]()
	synth.Of[string]()
}
