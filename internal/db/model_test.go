package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaTables(t *testing.T) {
	assert.Equal(t, []string{"users", "categories", "blogs", "tags", "blogTags", "comments", "menuItems"}, SchemaTables)
}
