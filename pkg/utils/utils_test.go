package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-08-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 17, 0, 0, 0, 0, time.Local), date)

	today, err := ParseDate("")
	require.NoError(t, err)
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, time.Now().Day(), today.Day())

	_, err = ParseDate("17/08/2024")
	assert.Error(t, err)
}

func TestParseOptionalDate(t *testing.T) {
	date, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseOptionalDate("2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.January, date.Month())
}

func TestGenerateCodes(t *testing.T) {
	teamCode, err := GenerateTeamCode()
	require.NoError(t, err)
	assert.Len(t, teamCode, 7)
	assert.True(t, strings.HasPrefix(teamCode, "T"))

	contractCode, err := GenerateContractCode()
	require.NoError(t, err)
	assert.Len(t, contractCode, 11)
	assert.True(t, strings.HasPrefix(contractCode, "C"))

	other, err := GenerateContractCode()
	require.NoError(t, err)
	assert.NotEqual(t, contractCode, other)
}
