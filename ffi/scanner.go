// +build cgo

package ffi

/*
#include <stdbool.h>
#include <stdint.h>

typedef struct TSLexer TSLexer;
struct TSLexer {
	int32_t lookahead;
	uint16_t result_symbol;
	void (*advance)(TSLexer *, bool);
	void (*mark_end)(TSLexer *);
	uint32_t (*get_column)(TSLexer *);
	bool (*is_at_included_range_start)(const TSLexer *);
	bool (*eof)(const TSLexer *);
};

static void scanner_advance(TSLexer *lexer, bool skip) { lexer->advance(lexer, skip); }
static void scanner_mark_end(TSLexer *lexer) { lexer->mark_end(lexer); }
static uint32_t scanner_column(TSLexer *lexer) { return lexer->get_column(lexer); }
static bool scanner_eof(const TSLexer *lexer) { return lexer->eof(lexer); }
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/jcorbin/layscan/scanlay"
)

// serializationBufferSize matches TREE_SITTER_SERIALIZATION_BUFFER_SIZE:
// the host never offers a larger checkpoint buffer.
const serializationBufferSize = 1024

// Go pointers must not cross the C boundary, so created stacks live in
// a registry keyed by an opaque handle value.
var (
	handleMu   sync.Mutex
	nextHandle uintptr = 1
	stacks             = make(map[uintptr]*scanlay.Stack)
)

func lookup(h uintptr) *scanlay.Stack {
	handleMu.Lock()
	defer handleMu.Unlock()
	return stacks[h]
}

//export tree_sitter_unison_external_scanner_create
func tree_sitter_unison_external_scanner_create() unsafe.Pointer {
	handleMu.Lock()
	defer handleMu.Unlock()
	h := nextHandle
	nextHandle++
	stacks[h] = &scanlay.Stack{}
	return unsafe.Pointer(h)
}

//export tree_sitter_unison_external_scanner_destroy
func tree_sitter_unison_external_scanner_destroy(payload unsafe.Pointer) {
	handleMu.Lock()
	defer handleMu.Unlock()
	delete(stacks, uintptr(payload))
}

//export tree_sitter_unison_external_scanner_scan
func tree_sitter_unison_external_scanner_scan(payload unsafe.Pointer, lexer *C.TSLexer, validSyms *C.bool) C.bool {
	indents := lookup(uintptr(payload))
	if indents == nil {
		return C.bool(false)
	}

	valid := make(scanlay.Valid, int(scanlay.Empty)+1)
	vs := (*[int(scanlay.Empty) + 1]C.bool)(unsafe.Pointer(validSyms))
	for i := range valid {
		valid[i] = bool(vs[i])
	}

	sym, ok := scanlay.Scan(&tsLexer{lexer}, valid, indents)
	if ok {
		lexer.result_symbol = C.uint16_t(sym)
	}
	return C.bool(ok)
}

//export tree_sitter_unison_external_scanner_serialize
func tree_sitter_unison_external_scanner_serialize(payload unsafe.Pointer, buffer *C.char) C.uint {
	indents := lookup(uintptr(payload))
	if indents == nil || buffer == nil {
		return 0
	}
	buf := (*[serializationBufferSize]byte)(unsafe.Pointer(buffer))
	return C.uint(indents.Serialize(buf[:]))
}

//export tree_sitter_unison_external_scanner_deserialize
func tree_sitter_unison_external_scanner_deserialize(payload unsafe.Pointer, buffer *C.char, length C.uint) {
	indents := lookup(uintptr(payload))
	if indents == nil || buffer == nil || length == 0 || length > serializationBufferSize {
		return
	}
	buf := (*[serializationBufferSize]byte)(unsafe.Pointer(buffer))
	n := int(length)
	indents.Deserialize(buf[:n:n])
}

// tsLexer adapts the host's TSLexer to the scanlay.Lexer contract. The
// function pointer fields are called through small C shims.
type tsLexer struct {
	l *C.TSLexer
}

func (t *tsLexer) Peek() rune     { return rune(t.l.lookahead) }
func (t *tsLexer) Advance()       { C.scanner_advance(t.l, C.bool(false)) }
func (t *tsLexer) Skip()          { C.scanner_advance(t.l, C.bool(true)) }
func (t *tsLexer) Column() uint32 { return uint32(C.scanner_column(t.l)) }
func (t *tsLexer) EOF() bool      { return bool(C.scanner_eof(t.l)) }
func (t *tsLexer) MarkEnd()       { C.scanner_mark_end(t.l) }
