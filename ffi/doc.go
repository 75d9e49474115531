// Package ffi exports the layout scanner with the C ABI a tree-sitter
// grammar expects of its external scanner: the five
// tree_sitter_unison_external_scanner_* entry points, bridging the
// host's TSLexer to the scanlay.Lexer contract.
//
// The package requires cgo; build it into the parser with
// -buildmode=c-archive.
package ffi
