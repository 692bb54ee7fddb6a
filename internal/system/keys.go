package system

import "encoding/binary"

const (
	evKey   = 0x01
	keyDown = 1

	// linux/input-event-codes.h
	keyEsc = 1
	keyQ   = 16
	keyF4  = 62
)

// ExitKeys are the keys that stop the viewer.
var ExitKeys = map[uint16]string{keyEsc: "Esc", keyQ: "Q", keyF4: "F4"}

// eventSize is the length of one struct input_event whose timeval takes
// tvSize bytes: timeval, u16 type, u16 code, s32 value.
func eventSize(tvSize int) int {
	return tvSize + 8
}

// exitKey reports whether rec, a single input_event, is a key press of one of
// ExitKeys. Releases and autorepeats are ignored.
func exitKey(rec []byte, tvSize int) (string, bool) {
	if len(rec) < eventSize(tvSize) {
		return "", false
	}
	typ := binary.LittleEndian.Uint16(rec[tvSize:])
	code := binary.LittleEndian.Uint16(rec[tvSize+2:])
	value := int32(binary.LittleEndian.Uint32(rec[tvSize+4:]))
	if typ != evKey || value != keyDown {
		return "", false
	}
	name, ok := ExitKeys[code]
	return name, ok
}

// scanExitKey walks a read buffer of whole input_event records and returns the
// first exit key pressed. A trailing partial record is ignored.
func scanExitKey(buf []byte, tvSize int) (string, bool) {
	size := eventSize(tvSize)
	for off := 0; off+size <= len(buf); off += size {
		if name, ok := exitKey(buf[off:off+size], tvSize); ok {
			return name, true
		}
	}
	return "", false
}
