package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("com.android.tools.build:gradle:8.1.0", nil)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Group: "com.android.tools.build", Artifact: "gradle", Version: "8.1.0"}, c)
	assert.Equal(t, "com.android.tools.build:gradle", c.Module())
	assert.Equal(t, "com.android.tools.build:gradle:8.1.0", c.String())
}

func TestParseCoordinateInterpolates(t *testing.T) {
	ext := map[string]string{"kotlin_version": "1.9.0"}

	for _, raw := range []string{
		"org.jetbrains.kotlin:kotlin-gradle-plugin:$kotlin_version",
		"org.jetbrains.kotlin:kotlin-gradle-plugin:${kotlin_version}",
	} {
		c, err := ParseCoordinate(raw, ext)
		require.NoError(t, err, raw)
		assert.Equal(t, "1.9.0", c.Version)
		assert.Equal(t, "kotlin-gradle-plugin", c.Artifact)
	}
}

func TestParseCoordinateErrors(t *testing.T) {
	_, err := ParseCoordinate("org.jetbrains.kotlin:kotlin-gradle-plugin:$kotlin_version", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kotlin_version")

	_, err = ParseCoordinate("com.android.tools.build:gradle", nil)
	assert.Error(t, err)

	_, err = ParseCoordinate("com.android.tools.build::8.1.0", nil)
	assert.Error(t, err)
}

func TestIsOlderThan(t *testing.T) {
	c := Coordinate{Group: "com.android.tools.build", Artifact: "gradle", Version: "8.1.0"}

	older, err := c.IsOlderThan("8.2.0")
	require.NoError(t, err)
	assert.True(t, older)

	older, err = c.IsOlderThan("8.1.0")
	require.NoError(t, err)
	assert.False(t, older)

	_, err = c.IsOlderThan("not-a-version")
	assert.Error(t, err)

	bad := Coordinate{Group: "g", Artifact: "a", Version: "latest.release"}
	_, err = bad.IsOlderThan("1.0.0")
	assert.Error(t, err)
}
