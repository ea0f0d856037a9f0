package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

var noColor = env.Bool("NO_COLOR")

func Fatal(v any) {
	if noColor {
		fmt.Fprintf(os.Stderr, "unusedsym: fatal: %v\n", v)
	} else {
		fmt.Fprintf(os.Stderr, "unusedsym:\n\t\033[0;1;31mfatal\033[0m: %v\n", v)
	}
	os.Exit(1)
}

func MustNo(err error) {
	if err != nil {
		Fatal(err.Error())
	}
}

// Read decodes one little-endian value of type T from the front of data.
func Read[T any](data []byte) (val T) {
	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.LittleEndian, &val)

	MustNo(err)

	return val
}
