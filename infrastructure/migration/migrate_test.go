package migration

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource(t *testing.T) {
	src, err := embeddedSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, identifier, err := src.ReadUp(version)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init_schema", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, table := range []string{"sales_members", "teams", "contracts", "sales_member_ranking"} {
		assert.True(t, strings.Contains(string(body), table), "tabela %s ausente", table)
	}
}
