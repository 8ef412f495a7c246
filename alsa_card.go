package alsa

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoCard is returned when no sound card matches a lookup.
var ErrNoCard = errors.New("sound card not found")

const (
	procCardsFile = "/proc/asound/cards"
	procPcmFile   = "/proc/asound/pcm"
)

var (
	// Matches lines like " 0 [OMAP4        ]: OMAP4 - OMAP4"
	cardRegex = regexp.MustCompile(`^\s*(\d+)\s+\[\s*([^]]*?)\s*\]:\s*(.*)`)
	// Matches lines like "02-00: Loopback PCM : Loopback PCM : playback 8 : capture 8"
	pcmRegex = regexp.MustCompile(`^(\d+)-(\d+): (.*?) :.*`)
)

// SoundCardDevice represents a single PCM device on a sound card.
type SoundCardDevice struct {
	ID          int
	Name        string
	Description string
	IsPlayback  bool // True for playback, false for capture
}

// String returns a human-readable representation of the SoundCardDevice.
func (d SoundCardDevice) String() string {
	direction := "Capture"
	if d.IsPlayback {
		direction = "Playback"
	}

	return fmt.Sprintf("  Device %d: %s (%s) [%s]", d.ID, d.Name, d.Description, direction)
}

// SoundCard represents an enumerated sound card with its devices.
// Name is the card identifier (the bracketed field), which board profiles match on.
type SoundCard struct {
	ID          int
	Name        string
	Description string
	Devices     []SoundCardDevice
}

// String returns a human-readable representation of the SoundCard.
func (c SoundCard) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Card %d: %s (%s)\n", c.ID, c.Name, c.Description))
	for _, dev := range c.Devices {
		sb.WriteString(dev.String() + "\n")
	}

	return sb.String()
}

// EnumerateCards scans /proc/asound to find all available sound cards and their PCM devices.
func EnumerateCards() ([]SoundCard, error) {
	cardsContent, err := os.ReadFile(procCardsFile)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", procCardsFile, err)
	}

	// The pcm file is absent on cards without PCM devices, which is not an error here.
	pcmContent, err := os.ReadFile(procPcmFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not read %s: %w", procPcmFile, err)
	}

	return ParseCards(string(cardsContent), string(pcmContent)), nil
}

// ParseCards builds the card list from the contents of /proc/asound/cards and /proc/asound/pcm.
// Cards are returned sorted by card number.
func ParseCards(cardsContent, pcmContent string) []SoundCard {
	cardMap := make(map[int]*SoundCard)

	for _, line := range strings.Split(cardsContent, "\n") {
		matches := cardRegex.FindStringSubmatch(line)
		if len(matches) != 4 {
			continue
		}

		id, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}

		cardMap[id] = &SoundCard{
			ID:          id,
			Name:        strings.TrimSpace(matches[2]),
			Description: strings.TrimSpace(matches[3]),
		}
	}

	for _, line := range strings.Split(pcmContent, "\n") {
		matches := pcmRegex.FindStringSubmatch(line)
		if len(matches) < 4 {
			continue
		}

		cardID, _ := strconv.Atoi(matches[1])
		devID, _ := strconv.Atoi(matches[2])

		card, ok := cardMap[cardID]
		if !ok {
			continue
		}

		description := strings.TrimSpace(matches[3])

		// A single PCM device can carry both directions, each gets its own entry.
		if strings.Contains(line, "playback") {
			card.Devices = append(card.Devices, SoundCardDevice{
				ID:          devID,
				Name:        fmt.Sprintf("pcm%dp", devID),
				Description: description,
				IsPlayback:  true,
			})
		}

		if strings.Contains(line, "capture") {
			card.Devices = append(card.Devices, SoundCardDevice{
				ID:          devID,
				Name:        fmt.Sprintf("pcm%dc", devID),
				Description: description,
			})
		}
	}

	ids := make([]int, 0, len(cardMap))
	for id := range cardMap {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	result := make([]SoundCard, 0, len(ids))
	for _, id := range ids {
		result = append(result, *cardMap[id])
	}

	return result
}

// FindCardByName returns the card whose identifier equals name, or ErrNoCard.
func FindCardByName(cards []SoundCard, name string) (SoundCard, error) {
	for _, c := range cards {
		if c.Name == name {
			return c, nil
		}
	}

	return SoundCard{}, fmt.Errorf("%w: %s", ErrNoCard, name)
}

// FindCard resolves a card given either its number or its identifier.
func FindCard(cards []SoundCard, ref string) (SoundCard, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		for _, c := range cards {
			if c.ID == n {
				return c, nil
			}
		}

		return SoundCard{}, fmt.Errorf("%w: card %d", ErrNoCard, n)
	}

	return FindCardByName(cards, ref)
}
