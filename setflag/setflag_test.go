package setflag_test

import (
	"testing"

	"github.com/linernotes/credits/setflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFlag(t *testing.T) {
	sf := setflag.New("producer", "artist", "album", "track")

	require.NoError(t, sf.Set("artist, producer"))
	assert.Equal(t, []string{"artist", "producer"}, sf.List())
	assert.Equal(t, "artist, producer", sf.String())

	assert.Error(t, sf.Set("genre"))
}
