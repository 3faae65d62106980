//go:build !u8debug

package u8string

const debugBuild = false
