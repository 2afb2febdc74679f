package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertSoundIsWAV(t *testing.T) {
	data, err := Sound(AlertSound)
	require.NoError(t, err)
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestLogoIsCached(t *testing.T) {
	first, err := Logo(AppIcon)
	require.NoError(t, err)
	second := MustLogo(AppIcon)
	assert.Same(t, first, second)
}

func TestMissingResources(t *testing.T) {
	_, err := Sound("missing.wav")
	assert.Error(t, err)
	_, err = Logo("missing.png")
	assert.Error(t, err)
	assert.Panics(t, func() { MustSound("missing.wav") })
}
