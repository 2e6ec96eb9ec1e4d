package main

/*
#include <stdint.h>
*/
import "C"
import (
	"os"
	"runtime/cgo"
	"unsafe"

	"github.com/tutils/lcg"
	"github.com/tutils/lcg/cmd"
)

//export RunCmd
func RunCmd(cargs **C.char, size C.int) {
	// 将 C 字符串数组转换为 Go []string
	args := os.Args[:1]
	for _, s := range unsafe.Slice(cargs, int(size)) {
		args = append(args, C.GoString(s))
	}
	os.Args = args
	cmd.Execute()
}

// LCGNew returns a handle to a new generator, or 0 when m <= 0.
// The handle must be released with LCGFree.
//
//export LCGNew
func LCGNew(a, c, m, seed C.int64_t) C.uintptr_t {
	g, err := lcg.New(int64(a), int64(c), int64(m), int64(seed))
	if err != nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(g))
}

//export LCGNext
func LCGNext(h C.uintptr_t) C.int64_t {
	return C.int64_t(generator(h).Next())
}

// LCGFill writes n values to dst.
//
//export LCGFill
func LCGFill(h C.uintptr_t, dst *C.int64_t, n C.int) {
	if n <= 0 {
		return
	}
	out := unsafe.Slice((*int64)(unsafe.Pointer(dst)), int(n))
	generator(h).Fill(out)
}

//export LCGState
func LCGState(h C.uintptr_t) C.int64_t {
	return C.int64_t(generator(h).State())
}

//export LCGFree
func LCGFree(h C.uintptr_t) {
	cgo.Handle(h).Delete()
}

func generator(h C.uintptr_t) *lcg.Generator {
	return cgo.Handle(h).Value().(*lcg.Generator)
}

func main() {} // 必须的空白主函数
