package model

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tabler interface {
	TableName() string
}

func TestAll_ListsEveryTableOnce(t *testing.T) {
	models := All()

	tables := make([]string, 0, len(models))
	for _, m := range models {
		tm, ok := m.(tabler)
		require.True(t, ok, "%T has no TableName", m)
		tables = append(tables, tm.TableName())
	}

	assert.ElementsMatch(t, []string{"profiles", "user_templates", "links", "link_clicks"}, tables)
	assert.Less(t, slices.Index(tables, "links"), slices.Index(tables, "link_clicks"), "clicks reference links")
}

