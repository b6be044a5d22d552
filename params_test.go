// seehuhn.de/go/monogram - vector geometry for the UC monogram
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package monogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 18)

	p := Default()
	seen := map[Key]bool{}
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true

		parsed, err := ParseKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)

		_, ok := p.Get(k)
		assert.True(t, ok, "Get(%s)", k)
	}

	keys[0] = "changed"
	assert.Equal(t, KeyStrokeWidth, Keys()[0], "Keys must return a copy")
}

func TestParseKeyUnknown(t *testing.T) {
	_, err := ParseKey("strokewidth")
	require.ErrorIs(t, err, ErrUnknownKey)

	_, ok := Default().Get("symmetricC")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	p := Default()
	v, ok := p.Get(KeyCGap)
	require.True(t, ok)
	assert.Equal(t, 73.0, v)

	v, ok = p.Get(KeyUBottomLeft)
	require.True(t, ok)
	assert.Equal(t, 50.0, v)
}

func TestEffective(t *testing.T) {
	p := Default()
	p.CReturnLength = 10

	assert.Equal(t, p.StrokeWidth, p.Effective(true).CReturnLength)
	assert.Equal(t, 10.0, p.Effective(false).CReturnLength)
	assert.Equal(t, 10.0, p.CReturnLength, "receiver must not change")
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		p := Default()
		p.CGap = bad
		err := p.Validate()
		assert.ErrorIs(t, err, ErrInvalidParams, "cGap = %g", bad)
	}
}
