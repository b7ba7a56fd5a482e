// Package model contains the GORM table mappings.
package model

// All returns every table model, in dependency order, for schema migration.
func All() []any {
	return []any{
		&ProfileModel{},
		&UserTemplateModel{},
		&LinkModel{},
		&LinkClickModel{},
	}
}
