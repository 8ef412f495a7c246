package alsa

// sndCtlCardInfo contains general information about a sound card.
type sndCtlCardInfo struct {
	Card       int32
	Pad        int32
	Id         [16]byte
	Driver     [16]byte
	Name       [32]byte
	Longname   [80]byte
	Reserved_  [16]byte
	Mixername  [80]byte
	Components [128]byte
}

// sndCtlElemId identifies a single control element.
type sndCtlElemId struct {
	Numid     uint32
	Iface     int32 // snd_ctl_elem_iface_t
	Device    uint32
	Subdevice uint32
	Name      [44]byte
	Index     uint32
}

// sndCtlElemInfo contains metadata about a control element.
type sndCtlElemInfo struct {
	Id     sndCtlElemId
	Typ    int32 // snd_ctl_elem_type_t
	Access uint32
	Count  uint32
	Owner  int32
	// This represents the C union, sized to the largest member.
	Value [128]byte
	// Reserved field size to match modern kernel expectations
	Reserved [64]byte
}

// sndCtlEvent represents a notification from the control interface.
type sndCtlEvent struct {
	Typ  int32
	Elem sndCtlEventElement
}

// sndCtlEventElement mirrors the C union member for element-related events.
type sndCtlEventElement struct {
	Mask uint32
	Id   sndCtlElemId
}

// integer is the `integer` member of the `snd_ctl_elem_info.value` union.
type integer struct {
	Min  clong
	Max  clong
	Step clong
}

// integer64 is the `integer64` member of the `snd_ctl_elem_info.value` union.
type integer64 struct {
	Min  int64
	Max  int64
	Step int64
}

// sndCtlEnum represents the `enumerated` member of the `snd_ctl_elem_info.value` union.
// Setting Item and issuing ELEM_INFO makes the kernel fill Name with that item's label.
type sndCtlEnum struct {
	Items       uint32
	Item        uint32
	Name        [64]byte
	NamesPtr    uint64
	NamesLength uint32
}
