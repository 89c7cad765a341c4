// Package vtcore implements the stateful core of a terminal emulator: a
// dispatcher that applies parsed VT/ANSI actions to an in-memory screen
// model, and a ref-counted, content-addressed cell style set.
//
// This package does not parse bytes and does not render pixels. Byte
// decoding is an external collaborator that produces [action.Action]
// values; glyph rendering, GPU compositing, and window management are not
// covered at all.
//
// # Quick Start
//
//	term := vtcore.New()
//	d := action.NewDispatcher()
//	d.Dispatch(term, action.Action{Kind: action.Print, Rune: 'H'})
//	d.Dispatch(term, action.Action{Kind: action.Print, Rune: 'i'})
//	fmt.Println(term.LineContent(0)) // "Hi"
//
// # Architecture
//
//   - [Terminal]: cursor, dual buffers, scroll region/margins, charsets,
//     tab stops, palette, hyperlink and semantic-prompt state. Implements
//     action.Target.
//   - [Buffer]/[Cell]: the screen grid; each [Cell] references a style by
//     [style.Id] rather than carrying its own colors.
//   - [vtcore/style.Set]: the ref-counted, hashed style table cells point
//     into.
//   - [vtcore/mode.Registry]: mode bits plus a LIFO save/restore stack.
//   - [vtcore/action.Dispatcher]: the pure, allocator-aware function that
//     applies one Action to a Target.
//
// # Dual Buffers
//
// Terminal maintains a primary buffer (with optional scrollback) and an
// alternate buffer (no scrollback); CSI ?47/1047/1049h/l switch between
// them.
//
// # Providers
//
// Response, bell, title, clipboard, scrollback, and recording hooks are
// all optional interfaces with Noop defaults; see providers.go.
//
// # Thread Safety
//
// Terminal methods lock internally and are safe for concurrent use by
// independent Terminal instances; dispatching concurrently onto the
// *same* Terminal from multiple goroutines is undefined, matching the
// single-threaded cooperative model the dispatcher assumes.
package vtcore
