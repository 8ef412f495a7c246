package alsa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// controlDevicePath is the device node of the control interface of a card.
const controlDevicePath = "/dev/snd/controlC%d"

// MixerCtl represents an individual mixer control handle.
type MixerCtl struct {
	mixer *Mixer
	info  sndCtlElemInfo
	ename []string // Cache for enumerated item names
}

// Mixer represents an open ALSA mixer device handle.
type Mixer struct {
	file     *os.File
	cardInfo sndCtlCardInfo
	Ctls     []*MixerCtl
	ctlMap   map[string][]*MixerCtl // Maps a name to one or more controls
	ctlIdMap map[uint32]*MixerCtl   // Maps a numid to its control for O(1) access
}

// MixerOpen opens the ALSA mixer for a given sound card and enumerates its controls.
// Only direct hardware control devices (e.g., /dev/snd/controlC0) are supported, there is no plugin layer.
func MixerOpen(card uint) (*Mixer, error) {
	path := fmt.Sprintf(controlDevicePath, card)

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open mixer device %s: %w", path, err)
	}

	mixer := &Mixer{
		file:     file,
		ctlMap:   make(map[string][]*MixerCtl),
		ctlIdMap: make(map[uint32]*MixerCtl),
	}

	// Get card info
	if err := ioctl(mixer.file.Fd(), SNDRV_CTL_IOCTL_CARD_INFO, uintptr(unsafe.Pointer(&mixer.cardInfo))); err != nil {
		_ = mixer.Close()

		return nil, fmt.Errorf("ioctl CARD_INFO failed: %w", err)
	}

	if err := mixer.enumerateAllControls(); err != nil {
		_ = mixer.Close()

		return nil, fmt.Errorf("failed to enumerate controls: %w", err)
	}

	return mixer, nil
}

// Close closes the mixer device handle.
func (m *Mixer) Close() error {
	if m == nil || m.file == nil {
		return nil
	}

	err := m.file.Close()
	m.file = nil

	return err
}

// Name returns the name of the sound card.
func (m *Mixer) Name() string {
	if m == nil {
		return ""
	}

	return cString(m.cardInfo.Name[:])
}

// ID returns the identifier of the sound card, the bracketed name in /proc/asound/cards.
func (m *Mixer) ID() string {
	if m == nil {
		return ""
	}

	return cString(m.cardInfo.Id[:])
}

// Driver returns the name of the kernel driver bound to the sound card.
func (m *Mixer) Driver() string {
	if m == nil {
		return ""
	}

	return cString(m.cardInfo.Driver[:])
}

// Card returns the card number the mixer was opened on.
func (m *Mixer) Card() int {
	if m == nil {
		return -1
	}

	return int(m.cardInfo.Card)
}

// NumCtls returns the total number of controls found on the mixer.
func (m *Mixer) NumCtls() int {
	if m == nil {
		return 0
	}

	return len(m.Ctls)
}

// NumCtlsByName returns the number of controls that match the given name.
func (m *Mixer) NumCtlsByName(name string) int {
	if m == nil {
		return 0
	}

	return len(m.ctlMap[name])
}

// Ctl returns a mixer control by its numeric ID.
func (m *Mixer) Ctl(id uint32) (*MixerCtl, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	ctl, ok := m.ctlIdMap[id]
	if !ok {
		return nil, fmt.Errorf("control with id %d not found", id)
	}

	return ctl, nil
}

// CtlByIndex returns a mixer control by its 0-based index in the enumerated list.
// The index is valid from 0 to NumCtls() - 1.
func (m *Mixer) CtlByIndex(index uint) (*MixerCtl, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	if index >= uint(m.NumCtls()) {
		return nil, fmt.Errorf("index %d is out of bounds (number of controls: %d)", index, m.NumCtls())
	}

	return m.Ctls[index], nil
}

// CtlByName returns the first mixer control found with the given name.
func (m *Mixer) CtlByName(name string) (*MixerCtl, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	return m.CtlByNameAndIndex(name, 0)
}

// CtlByNameAndIndex returns a specific mixer control handle by name and index.
func (m *Mixer) CtlByNameAndIndex(name string, index uint) (*MixerCtl, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	ctls, ok := m.ctlMap[name]
	if !ok {
		return nil, fmt.Errorf("control not found: %s", name)
	}

	if index >= uint(len(ctls)) {
		return nil, fmt.Errorf("index %d out of bounds for control %s", index, name)
	}

	return ctls[index], nil
}

// CtlByNameAndDevice returns a mixer control handle by name and device number.
func (m *Mixer) CtlByNameAndDevice(name string, device uint32) (*MixerCtl, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	ctls, ok := m.ctlMap[name]
	if !ok {
		return nil, fmt.Errorf("control not found: %s", name)
	}

	for _, ctl := range ctls {
		if ctl.Device() == device {
			return ctl, nil
		}
	}

	return nil, fmt.Errorf("control %s with device %d not found", name, device)
}

// AddNewCtls scans for and adds any new controls that have appeared since the mixer was opened.
func (m *Mixer) AddNewCtls() error {
	if m == nil {
		return fmt.Errorf("mixer is nil")
	}

	list := &sndCtlElemList{}
	if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_ELEM_LIST, uintptr(unsafe.Pointer(list))); err != nil {
		return fmt.Errorf("ioctl ELEM_LIST (get count) failed: %w", err)
	}

	currentCount := uint32(len(m.Ctls))
	kernelCount := list.Count

	if kernelCount <= currentCount {
		return nil // No new controls
	}

	numToAdd := kernelCount - currentCount
	ids := make([]sndCtlElemId, numToAdd)
	list.Space = numToAdd
	list.Offset = currentCount // Start enumerating from the first new control.
	list.Pids = uintptr(unsafe.Pointer(&ids[0]))

	if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_ELEM_LIST, uintptr(unsafe.Pointer(list))); err != nil {
		return fmt.Errorf("ioctl ELEM_LIST (get new ids) failed: %w", err)
	}

	m.addCtls(ids[:list.Used])

	return nil
}

// SubscribeEvents enables or disables event generation for this mixer handle.
func (m *Mixer) SubscribeEvents(enable bool) error {
	if m == nil {
		return fmt.Errorf("mixer is nil")
	}

	var val int32
	if enable {
		val = 1
	}

	if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_SUBSCRIBE_EVENTS, uintptr(unsafe.Pointer(&val))); err != nil {
		return fmt.Errorf("ioctl SUBSCRIBE_EVENTS failed: %w", err)
	}

	return nil
}

// WaitEvent waits for a mixer event to occur.
// It returns true if an event is pending, false on timeout.
func (m *Mixer) WaitEvent(timeoutMs int) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("mixer is nil")
	}

	pfd := []unix.PollFd{
		{Fd: int32(m.file.Fd()), Events: unix.POLLIN},
	}

	n, err := unix.Poll(pfd, timeoutMs)
	if err != nil {
		return false, err
	}

	if n == 0 {
		return false, nil // Timeout
	}

	if (pfd[0].Revents & unix.POLLIN) != 0 {
		return true, nil
	}

	return false, fmt.Errorf("poll returned with unexpected revents: %d", pfd[0].Revents)
}

// ReadEvent reads a pending mixer event from the device.
func (m *Mixer) ReadEvent() (*MixerEvent, error) {
	if m == nil {
		return nil, fmt.Errorf("mixer is nil")
	}

	var ev sndCtlEvent
	evSize := unsafe.Sizeof(ev)
	buffer := make([]byte, evSize)

	n, err := unix.Read(int(m.file.Fd()), buffer)
	if err != nil {
		return nil, err
	}

	if n < int(evSize) {
		return nil, fmt.Errorf("short read for event: got %d bytes, want %d", n, evSize)
	}

	ev = *(*sndCtlEvent)(unsafe.Pointer(&buffer[0]))

	// In ALSA, the `Typ` field identifies the event category. For control element
	// changes (the ones we care about), this type is SNDRV_CTL_EVENT_ELEM.
	if ev.Typ != SNDRV_CTL_EVENT_ELEM {
		return nil, fmt.Errorf("received non-element event type: %d", ev.Typ)
	}

	event := &MixerEvent{Type: MixerEventType(ev.Elem.Mask)}

	// Element events carry the element ID. REMOVE sets every bit of the mask.
	const eventMaskWithID = SNDRV_CTL_EVENT_MASK_VALUE | SNDRV_CTL_EVENT_MASK_INFO | SNDRV_CTL_EVENT_MASK_ADD | SNDRV_CTL_EVENT_MASK_TLV

	if event.Type.Removed() || event.Type&eventMaskWithID != 0 {
		event.ControlID = ev.Elem.Id.Numid
	}

	return event, nil
}

// ConsumeEvent reads and discards a single pending mixer event.
func (m *Mixer) ConsumeEvent() error {
	if m == nil {
		return fmt.Errorf("mixer is nil")
	}

	_, err := m.ReadEvent()

	return err
}

// Watch subscribes to control events and invokes fn for each one until ctx is cancelled.
// The poll timeout bounds how long a cancellation may go unnoticed.
func (m *Mixer) Watch(ctx context.Context, pollTimeout time.Duration, fn func(*MixerEvent)) error {
	if m == nil {
		return fmt.Errorf("mixer is nil")
	}

	if err := m.SubscribeEvents(true); err != nil {
		return err
	}
	defer m.SubscribeEvents(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		ready, err := m.WaitEvent(int(pollTimeout.Milliseconds()))
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}

			return err
		}

		if !ready {
			continue
		}

		ev, err := m.ReadEvent()
		if err != nil {
			return err
		}

		fn(ev)
	}
}

// Fd returns the underlying file descriptor for the mixer device.
func (m *Mixer) Fd() uintptr {
	if m == nil {
		return ^uintptr(0) // Invalid FD
	}

	return m.file.Fd()
}

// enumerateAllControls gets the information for every control on the mixer.
func (m *Mixer) enumerateAllControls() error {
	list := &sndCtlElemList{}

	// First call: get the count of controls
	if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_ELEM_LIST, uintptr(unsafe.Pointer(list))); err != nil {
		return fmt.Errorf("ioctl ELEM_LIST (get count) failed: %w", err)
	}

	count := list.Count
	if count == 0 {
		return nil
	}

	m.Ctls = make([]*MixerCtl, 0, count)
	ids := make([]sndCtlElemId, count)

	// Second call: get the actual control IDs
	list.Space = count
	list.Pids = uintptr(unsafe.Pointer(&ids[0]))

	if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_ELEM_LIST, uintptr(unsafe.Pointer(list))); err != nil {
		return fmt.Errorf("ioctl ELEM_LIST (get ids) failed: %w", err)
	}

	m.addCtls(ids[:list.Used])

	return nil
}

// addCtls queries the metadata of each id and registers the control in enumeration order.
// Controls whose info cannot be read are skipped.
func (m *Mixer) addCtls(ids []sndCtlElemId) {
	for _, id := range ids {
		info := sndCtlElemInfo{Id: id}

		if err := ioctl(m.file.Fd(), SNDRV_CTL_IOCTL_ELEM_INFO, uintptr(unsafe.Pointer(&info))); err != nil {
			continue
		}

		ctl := &MixerCtl{
			mixer: m,
			info:  info,
		}

		name := ctl.Name()
		m.Ctls = append(m.Ctls, ctl)
		m.ctlMap[name] = append(m.ctlMap[name], ctl)
		m.ctlIdMap[ctl.ID()] = ctl
	}
}

// cString converts a C-style null-terminated byte array to a Go string.
func cString(b []byte) string {
	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return string(b)
	}

	return string(b[:i])
}
