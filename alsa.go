// Package alsa provides a Go interface to the Linux ALSA control subsystem, modeled after the tinyalsa mixer API.
package alsa

// MixerCtlType defines the value type of mixer control.
type MixerCtlType int32

const (
	SNDRV_CTL_ELEM_TYPE_NONE       MixerCtlType = 0
	SNDRV_CTL_ELEM_TYPE_BOOLEAN    MixerCtlType = 1
	SNDRV_CTL_ELEM_TYPE_INTEGER    MixerCtlType = 2
	SNDRV_CTL_ELEM_TYPE_ENUMERATED MixerCtlType = 3
	SNDRV_CTL_ELEM_TYPE_BYTES      MixerCtlType = 4
	SNDRV_CTL_ELEM_TYPE_IEC958     MixerCtlType = 5
	SNDRV_CTL_ELEM_TYPE_INTEGER64  MixerCtlType = 6
	SNDRV_CTL_ELEM_TYPE_UNKNOWN    MixerCtlType = -1
)

// tinyalsa style aliases for the control types.
const (
	MIXER_CTL_TYPE_BOOL    = SNDRV_CTL_ELEM_TYPE_BOOLEAN
	MIXER_CTL_TYPE_INT     = SNDRV_CTL_ELEM_TYPE_INTEGER
	MIXER_CTL_TYPE_ENUM    = SNDRV_CTL_ELEM_TYPE_ENUMERATED
	MIXER_CTL_TYPE_BYTE    = SNDRV_CTL_ELEM_TYPE_BYTES
	MIXER_CTL_TYPE_IEC958  = SNDRV_CTL_ELEM_TYPE_IEC958
	MIXER_CTL_TYPE_INT64   = SNDRV_CTL_ELEM_TYPE_INTEGER64
	MIXER_CTL_TYPE_UNKNOWN = SNDRV_CTL_ELEM_TYPE_UNKNOWN
)

// String returns the short type name used by tinymix and by control dumps.
func (t MixerCtlType) String() string {
	switch t {
	case SNDRV_CTL_ELEM_TYPE_BOOLEAN:
		return "BOOL"
	case SNDRV_CTL_ELEM_TYPE_INTEGER:
		return "INT"
	case SNDRV_CTL_ELEM_TYPE_ENUMERATED:
		return "ENUM"
	case SNDRV_CTL_ELEM_TYPE_BYTES:
		return "BYTE"
	case SNDRV_CTL_ELEM_TYPE_IEC958:
		return "IEC958"
	case SNDRV_CTL_ELEM_TYPE_INTEGER64:
		return "INT64"
	default:
		return "UNKNOWN"
	}
}

// ParseMixerCtlType is the inverse of MixerCtlType.String.
func ParseMixerCtlType(s string) MixerCtlType {
	for t := SNDRV_CTL_ELEM_TYPE_BOOLEAN; t <= SNDRV_CTL_ELEM_TYPE_INTEGER64; t++ {
		if t.String() == s {
			return t
		}
	}

	return SNDRV_CTL_ELEM_TYPE_UNKNOWN
}

// CtlAccessFlag defines the access permissions for a mixer control.
type CtlAccessFlag uint32

const (
	// If set, the control is readable.
	SNDRV_CTL_ELEM_ACCESS_READ CtlAccessFlag = 1 << 0
	// If set, the control is writable.
	SNDRV_CTL_ELEM_ACCESS_WRITE CtlAccessFlag = 1 << 1
	// If set, the control uses the TLV mechanism for custom data structures.
	SNDRV_CTL_ELEM_ACCESS_TLV_READWRITE CtlAccessFlag = 1 << 13
)

// MixerEventType defines the type of event generated by the mixer.
type MixerEventType uint32

const (
	SNDRV_CTL_EVENT_ELEM = 0

	// Indicates that a control element's value has changed.
	SNDRV_CTL_EVENT_MASK_VALUE MixerEventType = 1 << 0
	// Indicates that a control element's metadata (e.g., range) has changed.
	SNDRV_CTL_EVENT_MASK_INFO MixerEventType = 1 << 1
	// Indicates that a control element has been added.
	SNDRV_CTL_EVENT_MASK_ADD MixerEventType = 1 << 2
	// Indicates that the TLV data of a control element has changed.
	SNDRV_CTL_EVENT_MASK_TLV MixerEventType = 1 << 3
	// Indicates a control element has been removed. The whole mask is set, so it
	// must be compared for equality before any other bit is tested.
	SNDRV_CTL_EVENT_MASK_REMOVE MixerEventType = ^MixerEventType(0)
)

// Removed reports whether the event announces the removal of its control.
func (t MixerEventType) Removed() bool {
	return t == SNDRV_CTL_EVENT_MASK_REMOVE
}

// Has reports whether every bit of mask is set. It is always false for a removal event.
func (t MixerEventType) Has(mask MixerEventType) bool {
	return !t.Removed() && t&mask == mask
}

// MixerEvent represents a notification from the ALSA control interface.
type MixerEvent struct {
	Type      MixerEventType
	ControlID uint32 // The numid of the control that changed.
}

// Value union capacities of snd_ctl_elem_value, per element type.
const (
	maxIntegerValues   = 128
	maxInteger64Values = 64
	maxEnumValues      = 128
	maxByteValues      = 512
)
