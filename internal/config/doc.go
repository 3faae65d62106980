// Package config loads the text engine configuration.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. built-in defaults (Default)
//  2. an optional TOML file
//  3. U8TEXT_* environment variables
//
// A configuration file looks like:
//
//	[decode]
//	mode = "strict"      # or "replace"
//
//	[wide]
//	bits = 16            # 0 selects the platform width
//
//	[alloc]
//	strategy = "paged"   # plain, paged or pool
//	page_size = 4096
//
//	[log]
//	level = "debug"      # zap level name, or "off"
//	development = false
//
// The builders on Config turn the settings into a zap logger, a
// codec.Decoder, an allocator and the option list for u8string
// constructors.
package config
