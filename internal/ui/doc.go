// Package ui provides the terminal primitives for sysmon's output.
//
// # Screen
//
// Screen wraps an io.Writer with the cursor operations the live dashboard
// is built from: relative line moves, line clearing, and cursor save and
// restore. The sequences are standard CSI escapes emitted through termenv:
//
//	MoveUp(n)       ESC [ n F   cursor up n lines, column one
//	MoveDown(n)     ESC [ n E   cursor down n lines, column one
//	ClearLine()     ESC [ 0K 1K erase the current line
//	SaveCursor()    ESC [ s
//	RestoreCursor() ESC [ u
//
// Escapes are emitted unconditionally so that redirected output, replayed
// with cat, reproduces the dashboard exactly. Colors are the one thing
// gated on a real terminal.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures: metric lines that could not be read
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Section headers
//	ColorMuted     (gray)   - Separators, secondary text
//	ColorSecondary (blue)   - Accents
package ui
