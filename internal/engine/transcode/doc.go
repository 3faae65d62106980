// Package transcode converts between UTF-8 and the other representations the
// engine exchanges text in.
//
// Code unit conversions work on Go slices:
//
//	units := transcode.UTF8ToUTF16("😀")   // []uint16{0xD83D, 0xDE00}
//	back := transcode.UTF16ToUTF8(units)    // []byte("😀")
//
// Wide conversions follow the platform wide character: UTF-16 units on
// Windows and UTF-32 units elsewhere. NewWideCodec selects a width
// explicitly.
//
// Wire conversions serialise text to bytes in a named Encoding (UTF-16 and
// UTF-32 in either byte order, Latin-1, ASCII, EBCDIC) using the
// golang.org/x/text transformers.
//
// Every conversion is total. Malformed input decodes to U+FFFD and
// characters a target cannot represent are substituted, so no function here
// fails on bad text. Errors are reserved for unknown encoding names and
// unsupported widths.
package transcode
