//go:build linux && (amd64 || arm64)

package alsa

// clong is a type alias for the C `long` type on 64-bit systems.
type clong = int64

// sndCtlElemValue holds the value of a control element.
type sndCtlElemValue struct {
	Id sndCtlElemId
	_  [8]byte
	// The value union on 64-bit systems is 1024 bytes (long value[128] = 8*128 = 1024)
	Value    [1024]byte
	Reserved [128]byte
}

// sndCtlElemList is used to enumerate control elements.
type sndCtlElemList struct {
	Offset   uint32
	Space    uint32
	Used     uint32
	Count    uint32
	Pids     uintptr // *sndCtlElemId
	Reserved [50]byte
}
