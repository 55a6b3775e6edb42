// Package textarea provides a virtualized, incrementally-updated text
// view for large, frequently-appended buffers such as console, log, or
// chat output.
//
// The text area keeps one growable character buffer with per-character
// colors, computes wrapped line boundaries incrementally after each
// mutation, and materializes only the currently visible window of lines
// into a pooled set of line renderers. Scrolling re-targets the window;
// renderers are recycled rather than recreated.
//
// Architecture:
//
//	┌───────────────────────────────────────────┐
//	│            TextArea (facade)              │
//	├───────────────────────────────────────────┤
//	│  buffer   │  layout   │ viewport │  pool  │
//	│  selection│  fontface │          │        │
//	├───────────────────────────────────────────┤
//	│      core.LineRenderer / core.Face        │
//	│   (terminal, GUI, or test collaborators)  │
//	└───────────────────────────────────────────┘
//
// All operations run synchronously on the owning goroutine. The only
// recurring work is drag auto-scroll, driven by the host calling Tick
// once per frame while a drag is active.
//
// Usage:
//
//	ta, _ := textarea.New(face, factory, 640, 480)
//	ta.SetText("hello\nworld")
//	ta.Append("more output\n")
//	ta.ScrollDown(3)
package textarea
