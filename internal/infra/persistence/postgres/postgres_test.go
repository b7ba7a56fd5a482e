package postgres

import (
	"strings"
	"testing"

	"biolink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findConstraint(t *testing.T, name string) tableConstraint {
	t.Helper()

	for _, c := range schemaConstraints {
		if c.name == name {
			return c
		}
	}
	require.Failf(t, "constraint missing", "no constraint named %s", name)

	return tableConstraint{}
}

func TestSchemaConstraints_LinkTypesInSync(t *testing.T) {
	check := findConstraint(t, "chk_links_type")

	for _, linkType := range []entity.LinkType{entity.LinkTypeGeneral, entity.LinkTypeSocial, entity.LinkTypeProduct, entity.LinkTypeEmbed} {
		assert.Contains(t, check.definition, "'"+string(linkType)+"'")
	}
}

func TestSchemaConstraints_ClicksCascadeWithLink(t *testing.T) {
	fk := findConstraint(t, "fk_link_clicks_link")

	assert.Equal(t, "link_clicks", fk.table)
	assert.True(t, strings.HasSuffix(fk.definition, "ON DELETE CASCADE"))
}

func TestAddConstraintSQL(t *testing.T) {
	got := addConstraintSQL(tableConstraint{table: "links", name: "chk_links_position", definition: "CHECK (position >= 0)"})

	assert.Equal(t, "ALTER TABLE links ADD CONSTRAINT chk_links_position CHECK (position >= 0)", got)
}
