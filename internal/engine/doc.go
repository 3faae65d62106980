// Package engine provides the text engine facade.
//
// The engine package re-exports the common types of its sub-packages and
// offers Engine, which turns a configuration into ready-made string
// constructors that share one allocator, one decode mode and one logger.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - codec: stateless UTF-8 decode, encode, length and validation primitives
//   - transcode: UTF-16, UTF-32, wide and wire encoding conversions
//   - alloc: buffer allocators (plain, paged, pooled)
//   - u8string: the owned String type with cursors, search and substrings
//   - textutil: ASCII case, glob matching, quoting and replacement helpers
//
// Control flows strictly downwards: u8string delegates every multi-byte
// interpretation to codec and every conversion to transcode.
//
// # Thread Safety
//
// An Engine is immutable after New and safe for concurrent use. The Strings
// it creates are not; each must be mutated by one goroutine at a time.
//
// # Basic Usage
//
//	e, err := engine.New(engine.WithDecodeMode(engine.ModeStrict))
//	if err != nil {
//		return err
//	}
//	s, err := e.Decode(input) // fails on malformed UTF-8
//	if err != nil {
//		return err
//	}
//	c := s.FindString("needle", s.Begin())
package engine
