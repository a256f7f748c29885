package tui

import (
	"errors"
	"testing"

	"github.com/linernotes/credits/pager"
	"github.com/stretchr/testify/assert"
)

func TestClampScrollFollowsCursor(t *testing.T) {
	m := &Model{height: 14} // list height 10

	m.cursor = 25
	m.clampScroll()
	assert.Equal(t, 16, m.scrollTop)

	// cursor stays visible without moving the window
	m.cursor = 20
	m.clampScroll()
	assert.Equal(t, 16, m.scrollTop)

	m.cursor = 5
	m.clampScroll()
	assert.Equal(t, 5, m.scrollTop)
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, 2020, releaseYear("2020-06-19"))
	assert.Equal(t, 1999, releaseYear("1999"))
	assert.Zero(t, releaseYear(""))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "long tex…", clip("long text here", 9))

	// never splits a rune mid-sequence
	assert.Equal(t, "Beyoncé", clip("Beyoncé", 7))
	assert.Equal(t, "Beyon…", clip("Beyoncé", 6))
}

func TestCreditsFetchErrorKeepsPaging(t *testing.T) {
	m := &Model{pager: pager.New(creditPageSize, pager.Order{
		Column: "album.release_date",
	})}
	issued := m.pager.Params()

	m.handleCreditsLoaded(creditsLoadedMsg{issued: issued, err: errors.New("boom")})

	// the error shows, but it doesn't read as a short final page
	assert.Error(t, m.err)
	assert.True(t, m.pager.CanNext())

	// an error for parameters the user moved past is dropped outright
	m.err = nil
	m.pager.NextPage()
	m.handleCreditsLoaded(creditsLoadedMsg{issued: issued, err: errors.New("boom")})
	assert.NoError(t, m.err)
}
