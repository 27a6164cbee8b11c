package dbg

import "runtime"

// caller returns the file path and line of the frame skip levels above the
// function calling caller; skip 0 is that function itself.
func caller(skip int) (string, int) {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return "", 0
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return frame.File, frame.Line
}
