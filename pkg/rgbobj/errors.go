package rgbobj

import "fmt"

// UnknownMagicError means the file starts with neither recognized magic tag.
type UnknownMagicError struct {
	File string
}

func (e *UnknownMagicError) Error() string {
	return fmt.Sprintf("%s: not an RGB object file", e.File)
}

// UnsupportedVersionError means the magic resolved to a container version
// this tool does not know the field layout for.
type UnsupportedVersionError struct {
	File    string
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: unsupported object version %d", e.File, e.Version)
}

// TruncatedInputError means the stream ended before a declared field did.
// Want is the number of missing bytes; it is zero when a string ran to the
// end of the input without a terminator, where no byte count is meaningful.
type TruncatedInputError struct {
	File   string
	Offset int
	Want   int
}

func (e *TruncatedInputError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%s: unterminated string at offset %d", e.File, e.Offset)
	}
	return fmt.Sprintf("%s: truncated at offset %d (%d more bytes needed)", e.File, e.Offset, e.Want)
}

// DecodeError means a field was present but held an undecodable value: a
// string that is not valid UTF-8, or an enum tag byte outside its range.
type DecodeError struct {
	File   string
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: offset %d: %s", e.File, e.Offset, e.Msg)
}
