package sqlfrag

import "unsafe"

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed
from the standard library. Reasonably safe here: every fragment is appended
into a freshly allocated buffer which is never mutated afterwards.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func appenderToStr(val Appender) string {
	return bytesToMutableString(val.Append(nil))
}

/*
Shared join loop backing every fragment type: renders the first element
without a leading separator and every subsequent element with a leading
comma. The caller is responsible for bounds validation.
*/
func appendJoined(text []byte, size int, render func([]byte, int) []byte) []byte {
	return appendJoinedFrom(text, 0, size, render)
}

func appendJoinedFrom(text []byte, begin int, size int, render func([]byte, int) []byte) []byte {
	for ix := begin; ix < size; ix++ {
		if ix > begin {
			text = append(text, `,`...)
		}
		text = render(text, ix)
	}
	return text
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}
