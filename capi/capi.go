// Command capi builds libtinyre, the C ABI for the engine:
//
//	go build -buildmode=c-shared -o libtinyre.so ./capi
//
// The exported surface mirrors the classic tiny-regex C API. A compiled
// pattern is handed to C as an opaque nonzero handle rather than a raw
// pointer, so the caller owns its lifetime explicitly:
//
//	uintptr_t re_compile(const char *pattern);           // 0 on failure
//	int32_t   re_matchp(uintptr_t re, const char *text, int32_t *match_length);
//	int32_t   re_match(const char *pattern, const char *text, int32_t *match_length);
//	void      re_free(uintptr_t re);
//
// re_matchp and re_match return the byte offset of the match start within
// text and write the match length through match_length, or return -1 when
// there is no match (or the pattern failed to compile). Handle bookkeeping
// is locked; everything else is as thread-safe as the engine itself. Panics
// never unwind across the C boundary — they convert to the failure value.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"sync"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/internal/conv"
)

var registry struct {
	sync.Mutex
	handles map[C.uintptr_t]*tinyre.Regex
	next    C.uintptr_t
}

//export re_compile
func re_compile(pattern *C.char) (handle C.uintptr_t) {
	defer func() {
		if recover() != nil {
			handle = 0
		}
	}()

	re, err := tinyre.Compile(C.GoString(pattern))
	if err != nil {
		return 0
	}

	registry.Lock()
	defer registry.Unlock()
	if registry.handles == nil {
		registry.handles = make(map[C.uintptr_t]*tinyre.Regex)
		registry.next = 1
	}
	handle = registry.next
	registry.next++
	registry.handles[handle] = re
	return handle
}

//export re_matchp
func re_matchp(handle C.uintptr_t, text *C.char, matchLength *C.int32_t) (pos C.int32_t) {
	defer func() {
		if recover() != nil {
			pos = -1
		}
	}()

	registry.Lock()
	re := registry.handles[handle]
	registry.Unlock()
	if re == nil {
		return -1
	}
	return matchp(re, text, matchLength)
}

//export re_match
func re_match(pattern *C.char, text *C.char, matchLength *C.int32_t) (pos C.int32_t) {
	defer func() {
		if recover() != nil {
			pos = -1
		}
	}()

	re, err := tinyre.Compile(C.GoString(pattern))
	if err != nil {
		return -1
	}
	return matchp(re, text, matchLength)
}

//export re_free
func re_free(handle C.uintptr_t) {
	registry.Lock()
	delete(registry.handles, handle)
	registry.Unlock()
}

func matchp(re *tinyre.Regex, text *C.char, matchLength *C.int32_t) C.int32_t {
	loc := re.FindIndex([]byte(C.GoString(text)))
	if loc == nil {
		return -1
	}
	if matchLength != nil {
		*matchLength = C.int32_t(conv.IntToInt32(loc[1] - loc[0]))
	}
	return C.int32_t(conv.IntToInt32(loc[0]))
}

func main() {}
