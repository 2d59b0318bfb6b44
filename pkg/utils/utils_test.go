package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Regexp(t, "^[A-Za-z0-9]{6}$", id)
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = ParseDate("2024-02-29", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("29/02/2024", fallback)
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 3, 5, 22, 10, 0, 0, time.UTC) }
	assert.Equal(t, "2024-03-05", Today(now))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, 10.0, RoundWithTwoDecimalPlace(10))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "[\n  1,\n  2\n]", PrettyJson([]byte("[1,2]")))
}
