package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := GetCategories()
	assert.Len(t, cats, 10)
	assert.Equal(t, CategoryOther, cats[len(cats)-1])

	assert.True(t, IsValidCategory("Food & Dining"))
	assert.True(t, IsValidCategory(CategoryTravel))
	assert.False(t, IsValidCategory("food & dining"))
	assert.False(t, IsValidCategory(""))

	assert.Equal(t, CategoryOther, NormalizeCategory(""))
	assert.Equal(t, CategoryBusiness, NormalizeCategory(CategoryBusiness))
}

func TestBeforeCreate_GeneratesUUID(t *testing.T) {
	p := &Project{ProjectName: "wedding"}
	require.NoError(t, p.BeforeCreate(nil))
	_, err := uuid.Parse(p.ID)
	assert.NoError(t, err)

	// 已有 ID 不覆盖
	in := &Income{ID: "fixed"}
	require.NoError(t, in.BeforeCreate(nil))
	assert.Equal(t, "fixed", in.ID)

	e := &Expense{}
	require.NoError(t, e.BeforeCreate(nil))
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, CategoryOther, e.Category)
}
