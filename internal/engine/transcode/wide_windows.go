//go:build windows

package transcode

// WideBits is the width of the platform wide character. Windows uses UTF-16.
const WideBits = Wide16
