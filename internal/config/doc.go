// Package config loads textwell settings from a TOML file and watches
// the file for live reload.
//
// Settings are grouped into sections mirroring the TOML layout:
//
//	[text]     cell metrics, tab stops, replacement glyph
//	[colors]   foreground and highlight colors as hex strings
//	[scroll]   drag auto-scroll speed, follow-tail behavior
//
// Load returns validated settings; Watch delivers debounced reload
// callbacks when the file changes on disk.
package config
