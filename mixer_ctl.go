package alsa

import (
	"fmt"
	"unsafe"
)

// Name returns the name of the control.
func (ctl *MixerCtl) Name() string {
	if ctl == nil {
		return ""
	}

	return cString(ctl.info.Id.Name[:])
}

// ID returns the numeric ID (numid) of the control.
func (ctl *MixerCtl) ID() uint32 {
	if ctl == nil {
		return ^uint32(0)
	}

	return ctl.info.Id.Numid
}

// Index returns the index of the control among the controls sharing its name.
func (ctl *MixerCtl) Index() uint32 {
	if ctl == nil {
		return 0
	}

	return ctl.info.Id.Index
}

// Device returns the device number associated with the control.
func (ctl *MixerCtl) Device() uint32 {
	if ctl == nil {
		return 0
	}

	return ctl.info.Id.Device
}

// Subdevice returns the subdevice number associated with the control.
func (ctl *MixerCtl) Subdevice() uint32 {
	if ctl == nil {
		return 0
	}

	return ctl.info.Id.Subdevice
}

// Type returns the data type of the control's value.
func (ctl *MixerCtl) Type() MixerCtlType {
	if ctl == nil {
		return MIXER_CTL_TYPE_UNKNOWN
	}

	switch t := MixerCtlType(ctl.info.Typ); t {
	case MIXER_CTL_TYPE_BOOL, MIXER_CTL_TYPE_INT, MIXER_CTL_TYPE_ENUM, MIXER_CTL_TYPE_BYTE, MIXER_CTL_TYPE_IEC958, MIXER_CTL_TYPE_INT64:
		return t
	default:
		return MIXER_CTL_TYPE_UNKNOWN
	}
}

// TypeString returns a string representation of the control's data type.
func (ctl *MixerCtl) TypeString() string {
	return ctl.Type().String()
}

// NumValues returns the number of values (slots) in the control.
func (ctl *MixerCtl) NumValues() uint32 {
	if ctl == nil {
		return 0
	}

	return ctl.info.Count
}

// Access returns the access flags of the control (see CtlAccessFlag).
func (ctl *MixerCtl) Access() uint32 {
	if ctl == nil {
		return 0
	}

	return ctl.info.Access
}

// Readable reports whether the control value can be read.
func (ctl *MixerCtl) Readable() bool {
	return ctl.Access()&uint32(SNDRV_CTL_ELEM_ACCESS_READ) != 0
}

// Writable reports whether the control value can be written.
func (ctl *MixerCtl) Writable() bool {
	return ctl.Access()&uint32(SNDRV_CTL_ELEM_ACCESS_WRITE) != 0
}

// Update refreshes the control's metadata from the kernel and drops the cached enum names.
func (ctl *MixerCtl) Update() error {
	if ctl == nil || ctl.mixer == nil || ctl.mixer.file == nil {
		return fmt.Errorf("control is nil or mixer is closed")
	}

	info := sndCtlElemInfo{}
	info.Id.Numid = ctl.info.Id.Numid

	if err := ioctl(ctl.mixer.file.Fd(), SNDRV_CTL_IOCTL_ELEM_INFO, uintptr(unsafe.Pointer(&info))); err != nil {
		return fmt.Errorf("ioctl ELEM_INFO failed for %s: %w", ctl.Name(), err)
	}

	ctl.info = info
	ctl.ename = nil

	return nil
}

// Value returns the value at the given slot. Boolean, integer and enumerated controls
// return their raw value, byte controls return the byte at that offset.
func (ctl *MixerCtl) Value(index uint) (int, error) {
	if err := ctl.checkIndex(index); err != nil {
		return 0, err
	}

	ev, err := ctl.read()
	if err != nil {
		return 0, err
	}

	switch ctl.Type() {
	case MIXER_CTL_TYPE_BOOL, MIXER_CTL_TYPE_INT:
		return int(ev.integer(index)), nil
	case MIXER_CTL_TYPE_ENUM:
		return int(ev.enumerated(index)), nil
	case MIXER_CTL_TYPE_BYTE:
		return int(ev.Value[index]), nil
	case MIXER_CTL_TYPE_INT64:
		return int(ev.integer64(index)), nil
	default:
		return 0, fmt.Errorf("unsupported control type %s for %s", ctl.TypeString(), ctl.Name())
	}
}

// SetValue writes the value at the given slot, leaving the other slots untouched.
func (ctl *MixerCtl) SetValue(index uint, value int) error {
	if err := ctl.checkIndex(index); err != nil {
		return err
	}

	ev, err := ctl.read()
	if err != nil {
		return err
	}

	switch ctl.Type() {
	case MIXER_CTL_TYPE_BOOL:
		if value != 0 {
			value = 1
		}
		ev.setInteger(index, clong(value))
	case MIXER_CTL_TYPE_INT:
		ev.setInteger(index, clong(value))
	case MIXER_CTL_TYPE_ENUM:
		ev.setEnumerated(index, uint32(value))
	case MIXER_CTL_TYPE_BYTE:
		ev.Value[index] = byte(value)
	case MIXER_CTL_TYPE_INT64:
		ev.setInteger64(index, int64(value))
	default:
		return fmt.Errorf("unsupported control type %s for %s", ctl.TypeString(), ctl.Name())
	}

	return ctl.write(ev)
}

// Value64 returns the value at the given slot of a 64-bit integer control.
func (ctl *MixerCtl) Value64(index uint) (int64, error) {
	if ctl.Type() != MIXER_CTL_TYPE_INT64 {
		v, err := ctl.Value(index)

		return int64(v), err
	}

	if err := ctl.checkIndex(index); err != nil {
		return 0, err
	}

	ev, err := ctl.read()
	if err != nil {
		return 0, err
	}

	return ev.integer64(index), nil
}

// SetValue64 writes the value at the given slot of a 64-bit integer control.
func (ctl *MixerCtl) SetValue64(index uint, value int64) error {
	if ctl.Type() != MIXER_CTL_TYPE_INT64 {
		return ctl.SetValue(index, int(value))
	}

	if err := ctl.checkIndex(index); err != nil {
		return err
	}

	ev, err := ctl.read()
	if err != nil {
		return err
	}

	ev.setInteger64(index, value)

	return ctl.write(ev)
}

// RangeMin returns the minimum value of an integer control.
func (ctl *MixerCtl) RangeMin() (int, error) {
	if ctl.Type() != MIXER_CTL_TYPE_INT {
		return 0, fmt.Errorf("control %s is not an integer control", ctl.Name())
	}

	return int(ctl.intRange().Min), nil
}

// RangeMax returns the maximum value of an integer control.
func (ctl *MixerCtl) RangeMax() (int, error) {
	if ctl.Type() != MIXER_CTL_TYPE_INT {
		return 0, fmt.Errorf("control %s is not an integer control", ctl.Name())
	}

	return int(ctl.intRange().Max), nil
}

// RangeMin64 returns the minimum value of a 64-bit integer control.
func (ctl *MixerCtl) RangeMin64() (int64, error) {
	if ctl.Type() != MIXER_CTL_TYPE_INT64 {
		return 0, fmt.Errorf("control %s is not a 64-bit integer control", ctl.Name())
	}

	return ctl.int64Range().Min, nil
}

// RangeMax64 returns the maximum value of a 64-bit integer control.
func (ctl *MixerCtl) RangeMax64() (int64, error) {
	if ctl.Type() != MIXER_CTL_TYPE_INT64 {
		return 0, fmt.Errorf("control %s is not a 64-bit integer control", ctl.Name())
	}

	return ctl.int64Range().Max, nil
}

// Percent returns the value at the given slot as a percentage of the control's range.
func (ctl *MixerCtl) Percent(index uint) (int, error) {
	minVal, err := ctl.RangeMin()
	if err != nil {
		return 0, err
	}

	maxVal, _ := ctl.RangeMax()
	if maxVal <= minVal {
		return 0, fmt.Errorf("control %s has an empty range", ctl.Name())
	}

	v, err := ctl.Value(index)
	if err != nil {
		return 0, err
	}

	return (v - minVal) * 100 / (maxVal - minVal), nil
}

// SetPercent sets the value at the given slot to a percentage of the control's range.
func (ctl *MixerCtl) SetPercent(index uint, percent int) error {
	minVal, err := ctl.RangeMin()
	if err != nil {
		return err
	}

	maxVal, _ := ctl.RangeMax()
	if percent < 0 || percent > 100 {
		return fmt.Errorf("percent %d out of range", percent)
	}

	return ctl.SetValue(index, minVal+(maxVal-minVal)*percent/100)
}

// NumEnums returns the number of items of an enumerated control.
func (ctl *MixerCtl) NumEnums() (uint32, error) {
	if ctl.Type() != MIXER_CTL_TYPE_ENUM {
		return 0, fmt.Errorf("control %s is not an enumerated control", ctl.Name())
	}

	return ctl.enumInfo().Items, nil
}

// EnumString returns the label of the enum item at the given item index.
func (ctl *MixerCtl) EnumString(item uint) (string, error) {
	names, err := ctl.AllEnumStrings()
	if err != nil {
		return "", err
	}

	if item >= uint(len(names)) {
		return "", fmt.Errorf("enum item %d out of bounds for %s (%d items)", item, ctl.Name(), len(names))
	}

	return names[item], nil
}

// AllEnumStrings returns the labels of every enum item, in item order.
func (ctl *MixerCtl) AllEnumStrings() ([]string, error) {
	if err := ctl.fillEnumNames(); err != nil {
		return nil, err
	}

	return append([]string(nil), ctl.ename...), nil
}

// EnumValueString returns the label currently selected at the given slot.
func (ctl *MixerCtl) EnumValueString(index uint) (string, error) {
	if ctl.Type() != MIXER_CTL_TYPE_ENUM {
		return "", fmt.Errorf("control %s is not an enumerated control", ctl.Name())
	}

	v, err := ctl.Value(index)
	if err != nil {
		return "", err
	}

	return ctl.EnumString(uint(v))
}

// SetEnumByString selects the item with the given label in every slot of the control.
func (ctl *MixerCtl) SetEnumByString(value string) error {
	item, err := ctl.EnumIndex(value)
	if err != nil {
		return err
	}

	ev := &sndCtlElemValue{}
	ev.Id.Numid = ctl.info.Id.Numid
	for i := uint(0); i < uint(ctl.NumValues()); i++ {
		ev.setEnumerated(i, uint32(item))
	}

	return ctl.write(ev)
}

// EnumIndex returns the item index of the given label.
func (ctl *MixerCtl) EnumIndex(value string) (uint, error) {
	if err := ctl.fillEnumNames(); err != nil {
		return 0, err
	}

	for i, name := range ctl.ename {
		if name == value {
			return uint(i), nil
		}
	}

	return 0, fmt.Errorf("enum value %q not found for %s", value, ctl.Name())
}

// Array reads all slots of the control into the slice pointed to by data.
// Supported targets are *[]int32 (boolean, integer, enumerated), *[]byte and *[]int64.
func (ctl *MixerCtl) Array(data any) error {
	if data == nil {
		return fmt.Errorf("data is nil")
	}

	if ctl == nil {
		return fmt.Errorf("control is nil")
	}

	ev, err := ctl.read()
	if err != nil {
		return err
	}

	n := uint(ctl.NumValues())

	switch d := data.(type) {
	case *[]int32:
		out := make([]int32, n)
		for i := uint(0); i < n; i++ {
			if ctl.Type() == MIXER_CTL_TYPE_ENUM {
				out[i] = int32(ev.enumerated(i))
			} else {
				out[i] = int32(ev.integer(i))
			}
		}
		*d = out
	case *[]byte:
		*d = append([]byte(nil), ev.Value[:n]...)
	case *[]int64:
		out := make([]int64, n)
		for i := uint(0); i < n; i++ {
			out[i] = ev.integer64(i)
		}
		*d = out
	default:
		return fmt.Errorf("unsupported array type %T", data)
	}

	return nil
}

// SetArray writes all slots of the control from data, which must hold exactly NumValues elements.
func (ctl *MixerCtl) SetArray(data any) error {
	if data == nil {
		return fmt.Errorf("data is nil")
	}

	if ctl == nil || ctl.mixer == nil {
		return fmt.Errorf("control is nil")
	}

	n := int(ctl.NumValues())
	ev := &sndCtlElemValue{}
	ev.Id.Numid = ctl.info.Id.Numid

	switch d := data.(type) {
	case []int32:
		if len(d) != n {
			return fmt.Errorf("array length %d does not match %d values of %s", len(d), n, ctl.Name())
		}
		for i, v := range d {
			if ctl.Type() == MIXER_CTL_TYPE_ENUM {
				ev.setEnumerated(uint(i), uint32(v))
			} else {
				ev.setInteger(uint(i), clong(v))
			}
		}
	case []byte:
		if len(d) != n {
			return fmt.Errorf("array length %d does not match %d values of %s", len(d), n, ctl.Name())
		}
		copy(ev.Value[:], d)
	case []int64:
		if len(d) != n {
			return fmt.Errorf("array length %d does not match %d values of %s", len(d), n, ctl.Name())
		}
		for i, v := range d {
			ev.setInteger64(uint(i), v)
		}
	default:
		return fmt.Errorf("unsupported array type %T", data)
	}

	return ctl.write(ev)
}

func (ctl *MixerCtl) checkIndex(index uint) error {
	if ctl == nil || ctl.mixer == nil {
		return fmt.Errorf("control is nil")
	}

	if index >= uint(ctl.info.Count) {
		return fmt.Errorf("index %d out of bounds for %s (%d values)", index, ctl.Name(), ctl.info.Count)
	}

	var limit uint
	switch ctl.Type() {
	case MIXER_CTL_TYPE_BOOL, MIXER_CTL_TYPE_INT:
		limit = maxIntegerValues
	case MIXER_CTL_TYPE_ENUM:
		limit = maxEnumValues
	case MIXER_CTL_TYPE_BYTE:
		limit = maxByteValues
	case MIXER_CTL_TYPE_INT64:
		limit = maxInteger64Values
	default:
		return nil
	}

	if index >= limit {
		return fmt.Errorf("index %d exceeds value capacity %d for %s", index, limit, ctl.Name())
	}

	return nil
}

func (ctl *MixerCtl) read() (*sndCtlElemValue, error) {
	if ctl == nil || ctl.mixer == nil || ctl.mixer.file == nil {
		return nil, fmt.Errorf("control is nil or mixer is closed")
	}

	ev := &sndCtlElemValue{}
	ev.Id.Numid = ctl.info.Id.Numid

	if err := ioctl(ctl.mixer.file.Fd(), SNDRV_CTL_IOCTL_ELEM_READ, uintptr(unsafe.Pointer(ev))); err != nil {
		return nil, fmt.Errorf("ioctl ELEM_READ failed for %s: %w", ctl.Name(), err)
	}

	return ev, nil
}

func (ctl *MixerCtl) write(ev *sndCtlElemValue) error {
	if ctl == nil || ctl.mixer == nil || ctl.mixer.file == nil {
		return fmt.Errorf("control is nil or mixer is closed")
	}

	if err := ioctl(ctl.mixer.file.Fd(), SNDRV_CTL_IOCTL_ELEM_WRITE, uintptr(unsafe.Pointer(ev))); err != nil {
		return fmt.Errorf("ioctl ELEM_WRITE failed for %s: %w", ctl.Name(), err)
	}

	return nil
}

// fillEnumNames queries the label of every enum item once and caches them.
func (ctl *MixerCtl) fillEnumNames() error {
	if ctl.Type() != MIXER_CTL_TYPE_ENUM {
		return fmt.Errorf("control %s is not an enumerated control", ctl.Name())
	}

	if ctl.ename != nil {
		return nil
	}

	if ctl.mixer == nil || ctl.mixer.file == nil {
		return fmt.Errorf("mixer is closed")
	}

	items := ctl.enumInfo().Items
	names := make([]string, 0, items)

	for i := uint32(0); i < items; i++ {
		info := sndCtlElemInfo{}
		info.Id.Numid = ctl.info.Id.Numid
		enum := (*sndCtlEnum)(unsafe.Pointer(&info.Value[0]))
		enum.Item = i

		if err := ioctl(ctl.mixer.file.Fd(), SNDRV_CTL_IOCTL_ELEM_INFO, uintptr(unsafe.Pointer(&info))); err != nil {
			return fmt.Errorf("ioctl ELEM_INFO failed for item %d of %s: %w", i, ctl.Name(), err)
		}

		names = append(names, cString(enum.Name[:]))
	}

	ctl.ename = names

	return nil
}

func (ctl *MixerCtl) intRange() *integer {
	return (*integer)(unsafe.Pointer(&ctl.info.Value[0]))
}

func (ctl *MixerCtl) int64Range() *integer64 {
	return (*integer64)(unsafe.Pointer(&ctl.info.Value[0]))
}

func (ctl *MixerCtl) enumInfo() *sndCtlEnum {
	return (*sndCtlEnum)(unsafe.Pointer(&ctl.info.Value[0]))
}

func (ev *sndCtlElemValue) integer(index uint) clong {
	return *(*clong)(unsafe.Pointer(&ev.Value[index*uint(unsafe.Sizeof(clong(0)))]))
}

func (ev *sndCtlElemValue) setInteger(index uint, v clong) {
	*(*clong)(unsafe.Pointer(&ev.Value[index*uint(unsafe.Sizeof(clong(0)))])) = v
}

func (ev *sndCtlElemValue) enumerated(index uint) uint32 {
	return *(*uint32)(unsafe.Pointer(&ev.Value[index*4]))
}

func (ev *sndCtlElemValue) setEnumerated(index uint, v uint32) {
	*(*uint32)(unsafe.Pointer(&ev.Value[index*4])) = v
}

func (ev *sndCtlElemValue) integer64(index uint) int64 {
	return *(*int64)(unsafe.Pointer(&ev.Value[index*8]))
}

func (ev *sndCtlElemValue) setInteger64(index uint, v int64) {
	*(*int64)(unsafe.Pointer(&ev.Value[index*8])) = v
}
