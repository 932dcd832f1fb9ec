package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnit(t *testing.T) {
	assert.Equal(t, "cup", NormalizeUnit("Cup"))
	assert.Equal(t, "tbsp", NormalizeUnit("  TBSP  "))
}

func TestUnitCategory(t *testing.T) {
	assert.Equal(t, CategoryVolume, UnitCategory("cup"))
	assert.Equal(t, CategoryWeight, UnitCategory("lbs"))
	assert.Equal(t, CategoryCount, UnitCategory("piece"))
	assert.Equal(t, "", UnitCategory("unknown"))
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert("cup", "tablespoon"))
	assert.True(t, CanConvert("oz", "lbs"))
	assert.False(t, CanConvert("cup", "lbs"))
	assert.False(t, CanConvert("piece", "pieces"))
}

func TestVolumeConversions(t *testing.T) {
	got, ok := Convert(1, "cup", "tablespoon")
	assert.True(t, ok)
	assert.InDelta(t, 16, got, 0.001)

	got, ok = Convert(4, "cup", "quart")
	assert.True(t, ok)
	assert.InDelta(t, 1, got, 0.001)

	got, ok = Convert(3, "teaspoon", "tablespoon")
	assert.True(t, ok)
	assert.InDelta(t, 1, got, 0.001)
}

func TestWeightConversions(t *testing.T) {
	got, ok := Convert(1000, "g", "kg")
	assert.True(t, ok)
	assert.InDelta(t, 1, got, 0.001)

	got, ok = Convert(16, "oz", "lb")
	assert.True(t, ok)
	assert.InDelta(t, 1, got, 0.01)
}

func TestConvertSameUnit(t *testing.T) {
	got, ok := Convert(5, "cup", "cup")
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)
}

func TestConvertIncompatibleUnits(t *testing.T) {
	_, ok := Convert(1, "cup", "lbs")
	assert.False(t, ok)
}

func TestBestUnitVolume(t *testing.T) {
	qty, unit := BestUnit(20, "cup")
	assert.Equal(t, "gallon", unit)
	assert.InDelta(t, 1.25, qty, 0.001)

	_, unit = BestUnit(0.05, "cup")
	assert.Contains(t, unit, "teaspoon")
}

func TestBestUnitWeight(t *testing.T) {
	qty, unit := BestUnit(1500, "g")
	assert.Equal(t, "kg", unit)
	assert.InDelta(t, 1.5, qty, 0.001)

	qty, unit = BestUnit(2, "lbs")
	assert.Equal(t, "lbs", unit)
	assert.InDelta(t, 2, qty, 0.001)
}
