//go:build !windows

package transcode

// WideBits is the width of the platform wide character.
const WideBits = Wide32
