// Package base16 loads base16 color-scheme definitions into immutable
// palettes for terminal user interfaces.
//
// A base16 scheme names sixteen color slots. Slots base00 through base07 are
// shades running from the default background to the lightest background; they
// cover foreground and background roles, status bars, line highlighting and
// selection. Slots base08 through base0F are the accent colors used for
// variables, constants, strings, functions, keywords and so on. A scheme
// document may also set the UI-role slots background, foreground, cursor and
// selection explicitly; when absent they are derived from the base slots
// (background from base00, foreground from base07, cursor from base05,
// selection from base02).
//
// Schemes are read from YAML, TOML or JSON documents with Load, Parse and the
// format-specific From functions, or taken from the built-in preset table
// with Preset. Parsed palettes convert to whatever color representation the
// consuming renderer wants: Color implements image/color.Color, the styles
// subpackage builds a lipgloss style set, and Palette.Terminal exports the
// conventional ANSI-16 assignment.
//
// The package performs no I/O beyond reading the named file, keeps no mutable
// state after init, and never logs; every failure is returned to the caller
// as a *ParseError, *SchemaError or *NotFoundError.
package base16
