package shaders

import (
	"fmt"
	"io"
	"os"
)

// ErrorOutput is the sink for precondition diagnostics. An operation called
// on a shader that was not compiled with the required feature writes one line
// here and returns without touching GL state; execution continues with the
// shader in its prior state. Callers (and tests) may redirect it.
var ErrorOutput io.Writer = os.Stderr

// Errorf writes a single diagnostic line to ErrorOutput.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(ErrorOutput, "shaders: "+format+"\n", args...)
}
