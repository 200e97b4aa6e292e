package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPrefillsPrimaryGifts(t *testing.T) {
	d := Default("Teaching, Mercy, Faith")
	assert.Equal(t, "Teaching, Mercy, Faith", d.PrimaryGifts)
	assert.Empty(t, d.SecondaryGifts)
	assert.False(t, d.Categories.Numericos)
}

func TestFromStoredPreservesStoredPrimaryGifts(t *testing.T) {
	loaded := Data{PrimaryGifts: "Service, Giving, Leadership"}
	d := FromStored(loaded, "Teaching, Mercy, Faith")

	// A stored value must never be overwritten by a fresh auto-fill.
	assert.Equal(t, "Service, Giving, Leadership", d.PrimaryGifts)
}

func TestFromStoredFallsBackWhenPrimaryEmpty(t *testing.T) {
	for _, stored := range []string{"", "   "} {
		d := FromStored(Data{PrimaryGifts: stored}, "Teaching, Mercy, Faith")
		assert.Equal(t, "Teaching, Mercy, Faith", d.PrimaryGifts)
	}
}

func TestFromStoredCarriesAllFields(t *testing.T) {
	loaded := Data{
		SecondaryGifts:   "Hospitality",
		ChosenMinistries: "welcome team",
		Timeline1Year:    "lead the team",
		Categories:       Categories{Madurez: true},
	}
	d := FromStored(loaded, "x")

	assert.Equal(t, "Hospitality", d.SecondaryGifts)
	assert.Equal(t, "welcome team", d.ChosenMinistries)
	assert.Equal(t, "lead the team", d.Timeline1Year)
	assert.True(t, d.Categories.Madurez)
	assert.False(t, d.Categories.Numericos)
}

func TestWithFieldReplacesOnlyThatField(t *testing.T) {
	d := Default("top").
		WithField(FieldSecondaryGifts, "Discernment").
		WithField(FieldBaseOfOperations, "home")

	assert.Equal(t, "Discernment", d.SecondaryGifts)
	assert.Equal(t, "home", d.BaseOfOperations)
	assert.Equal(t, "top", d.PrimaryGifts)
	assert.Empty(t, d.ActionPlanDetails)
}

func TestGetRoundTripsEveryTextField(t *testing.T) {
	d := Data{}
	for _, f := range TextFields {
		d = d.WithField(f, "value")
		assert.Equal(t, "value", d.Get(f), "field %d", f)
	}
}

func TestWithCategoryPartialUpdate(t *testing.T) {
	d := Data{Categories: Categories{Numericos: true, Organicos: true}}

	d = d.WithCategory(CategoryMadurez, true)

	// Toggling one flag must leave the other two unchanged.
	assert.True(t, d.Categories.Numericos)
	assert.True(t, d.Categories.Madurez)
	assert.True(t, d.Categories.Organicos)

	d = d.WithCategory(CategoryNumericos, false)
	assert.False(t, d.Categories.Numericos)
	assert.True(t, d.Categories.Madurez)
	assert.True(t, d.Categories.Organicos)
}
