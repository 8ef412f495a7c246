package alsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	alsa "github.com/gen2brain/alsa-audiotool"
)

const procCards = ` 0 [OMAP4          ]: OMAP4 - OMAP4
                      OMAP4
 1 [HDMI           ]: HDMI - HDMI
                      HDMI
`

const procPcm = `00-00: Multimedia omap-abe-dai-0 :  : playback 1 : capture 1
00-02: Voice omap-abe-dai-2 :  : playback 1
01-00: HDMI hdmi-hifi-0 :  : playback 1
07-00: Orphan :  : capture 1
`

func TestParseCards(t *testing.T) {
	cards := alsa.ParseCards(procCards, procPcm)
	require.Len(t, cards, 2)

	assert.Equal(t, 0, cards[0].ID)
	assert.Equal(t, "OMAP4", cards[0].Name)
	assert.Equal(t, "OMAP4 - OMAP4", cards[0].Description)
	require.Len(t, cards[0].Devices, 3)
	assert.Equal(t, "pcm0p", cards[0].Devices[0].Name)
	assert.True(t, cards[0].Devices[0].IsPlayback)
	assert.Equal(t, "pcm0c", cards[0].Devices[1].Name)
	assert.False(t, cards[0].Devices[1].IsPlayback)
	assert.Equal(t, "pcm2p", cards[0].Devices[2].Name)

	assert.Equal(t, "HDMI", cards[1].Name)
	require.Len(t, cards[1].Devices, 1)
	assert.Contains(t, cards[1].String(), "Card 1: HDMI (HDMI - HDMI)")
	assert.Contains(t, cards[1].String(), "Device 0: pcm0p")
}

func TestParseCardsEmpty(t *testing.T) {
	assert.Empty(t, alsa.ParseCards("", ""))
	assert.Empty(t, alsa.ParseCards("--- no soundcards ---\n", ""))
}

func TestFindCard(t *testing.T) {
	cards := alsa.ParseCards(procCards, "")

	c, err := alsa.FindCardByName(cards, "HDMI")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)

	_, err = alsa.FindCardByName(cards, "Tuna")
	assert.ErrorIs(t, err, alsa.ErrNoCard)

	c, err = alsa.FindCard(cards, "0")
	require.NoError(t, err)
	assert.Equal(t, "OMAP4", c.Name)

	c, err = alsa.FindCard(cards, "OMAP4")
	require.NoError(t, err)
	assert.Equal(t, 0, c.ID)

	_, err = alsa.FindCard(cards, "9")
	assert.ErrorIs(t, err, alsa.ErrNoCard)
}

func TestMixerCtlType(t *testing.T) {
	for _, typ := range []alsa.MixerCtlType{
		alsa.MIXER_CTL_TYPE_BOOL,
		alsa.MIXER_CTL_TYPE_INT,
		alsa.MIXER_CTL_TYPE_ENUM,
		alsa.MIXER_CTL_TYPE_BYTE,
		alsa.MIXER_CTL_TYPE_IEC958,
		alsa.MIXER_CTL_TYPE_INT64,
	} {
		assert.Equal(t, typ, alsa.ParseMixerCtlType(typ.String()))
	}

	assert.Equal(t, alsa.MIXER_CTL_TYPE_UNKNOWN, alsa.ParseMixerCtlType("FLOAT"))
	assert.Equal(t, "UNKNOWN", alsa.SNDRV_CTL_ELEM_TYPE_NONE.String())
}

func TestMixerEventType(t *testing.T) {
	removed := alsa.MixerEventType(0xFFFFFFFF)
	assert.Equal(t, alsa.SNDRV_CTL_EVENT_MASK_REMOVE, removed)
	assert.True(t, removed.Removed())
	assert.False(t, removed.Has(alsa.SNDRV_CTL_EVENT_MASK_VALUE))
	assert.False(t, removed.Has(alsa.SNDRV_CTL_EVENT_MASK_ADD))

	changed := alsa.SNDRV_CTL_EVENT_MASK_VALUE | alsa.SNDRV_CTL_EVENT_MASK_TLV
	assert.False(t, changed.Removed())
	assert.True(t, changed.Has(alsa.SNDRV_CTL_EVENT_MASK_VALUE))
	assert.True(t, changed.Has(alsa.SNDRV_CTL_EVENT_MASK_TLV))
	assert.False(t, changed.Has(alsa.SNDRV_CTL_EVENT_MASK_INFO))
	assert.Equal(t, alsa.MixerEventType(1<<3), alsa.SNDRV_CTL_EVENT_MASK_TLV)
}
