package fractals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSeed(t *testing.T) {
	s, err := Init("1a2b")
	require.NoError(t, err)
	assert.Equal(t, int64(0x1a2b), s.GetSeed())

	require.NoError(t, s.SetSeed("0xff"))
	assert.Equal(t, int64(255), s.GetSeed())

	assert.Error(t, s.SetSeed("zz"))
	assert.Equal(t, int64(255), s.GetSeed(), "bad seed keeps the old one")

	s2, err := Init("")
	require.NoError(t, err)
	assert.NotZero(t, s2.GetSeed())
}

func TestSeedSource(t *testing.T) {
	s, err := Init("42")
	require.NoError(t, err)
	a := rand.New(s.Source())
	b := rand.New(s.Source())
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestGetFilename(t *testing.T) {
	s, err := Init("abc")
	require.NoError(t, err)
	got := s.GetFilename("koch", ".svg")
	assert.True(t, strings.HasPrefix(got, "koch"), got)
	assert.True(t, strings.HasSuffix(got, "-abc.svg"), got)
}
