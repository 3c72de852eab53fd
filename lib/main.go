// Dynamically loadable library exposing the dyloading_add symbol with
// the C ABI existing hosts expect. Build with:
//
//	go build -buildmode=c-shared -o libexternal_dy.so ./lib
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/NenX/go-dyloading/dyloading"
)

// dyloading_add echoes the prior contents of result to stdout as a
// greeting, overwrites result in place with the formatted message, and
// returns a + b. The caller owns result and must size it for the
// message plus NUL terminator; no bounds check happens at this
// boundary, matching the original contract. Concurrent calls sharing
// one buffer race; use a buffer per call.
//
//export dyloading_add
func dyloading_add(a, b C.int32_t, result *C.char) C.int32_t {
	fmt.Println(dyloading.Greeting(C.GoString(result)))

	sum := dyloading.Sum(int32(a), int32(b))

	msg := dyloading.Message(int32(a), int32(b))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(result)), len(msg)+1)
	copy(buf, msg)
	buf[len(msg)] = 0

	return C.int32_t(sum)
}

// main is required for -buildmode=c-shared; hosts that load the
// library never run it.
func main() {}
