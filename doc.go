// Package u8text is an owned UTF-8 text engine.
//
// A String owns a byte buffer that always holds well-formed UTF-8. It is
// read through forward Cursors, searched by byte, code point or substring,
// sliced into new Strings and converted to and from UTF-16, UTF-32 and the
// platform wide character representation. Malformed input never fails by
// default: every malformed byte decodes as U+FFFD and consumes exactly one
// byte. A strict Engine rejects it instead.
//
// # Basic Usage
//
//	s := u8text.FromString("banana")
//	c := s.FindString("na", s.Begin())
//	fmt.Println(c.Offset()) // 2
//
//	for r := range s.Runes() {
//		...
//	}
//
// # Configuration
//
// An Engine bundles a decode mode, a wide width, an allocator and a logger,
// optionally loaded from TOML and U8TEXT_* environment variables:
//
//	e, err := u8text.Load(u8text.WithConfigFile("u8text.toml"))
//	if err != nil {
//		return err
//	}
//	s, err := e.Decode(raw)
//
// # Debug Checks
//
// Cursor misuse (dereferencing at the end, comparing cursors of different
// strings, using a cursor after its string changed) is a precondition
// violation. Building with the u8debug tag, or calling SetDebugChecks(true),
// turns these into panics carrying a *ContractError.
package u8text
