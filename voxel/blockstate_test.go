package voxel

import "testing"

func TestParseBlockState(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"minecraft:stone", "minecraft:stone"},
		{"stone", "minecraft:stone"},
		{"minecraft:oak_stairs[half=bottom,facing=north]", "minecraft:oak_stairs[facing=north,half=bottom]"},
		{"minecraft:oak_stairs[facing=north,half=bottom]", "minecraft:oak_stairs[facing=north,half=bottom]"},
		{"minecraft:water[level=3]", "minecraft:water[level=3]"},
		{"minecraft:oak_log[waterlogged=false]", "minecraft:oak_log[waterlogged=false]"},
		{"mymod:gizmo[on=true]", "mymod:gizmo[on=true]"},
	}
	for _, tt := range tests {
		got := ParseBlockState(tt.in).String()
		if got != tt.want {
			t.Errorf("ParseBlockState(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseBlockStatePropertyTypes(t *testing.T) {
	b := ParseBlockState("minecraft:repeater[delay=2,locked=false,facing=south]")
	if v, ok := b.Properties["delay"].(int32); !ok || v != 2 {
		t.Errorf("delay = %#v, want int32(2)", b.Properties["delay"])
	}
	if v, ok := b.Properties["locked"].(bool); !ok || v {
		t.Errorf("locked = %#v, want false", b.Properties["locked"])
	}
	if v, ok := b.Properties["facing"].(string); !ok || v != "south" {
		t.Errorf("facing = %#v, want \"south\"", b.Properties["facing"])
	}
}

func TestCanonicalEquality(t *testing.T) {
	a := ParseBlockState("minecraft:oak_stairs[half=top,facing=east]")
	b := ParseBlockState("minecraft:oak_stairs[facing=east,half=top]")
	if a.String() != b.String() {
		t.Fatalf("property order changed canonical form: %q vs %q", a.String(), b.String())
	}
}

func TestIsAir(t *testing.T) {
	if !ParseBlockState("minecraft:air").IsAir() {
		t.Error("minecraft:air not recognized as air")
	}
	if !ParseBlockState("air").IsAir() {
		t.Error("bare air not recognized as air after namespacing")
	}
	if ParseBlockState("minecraft:stone").IsAir() {
		t.Error("stone recognized as air")
	}
	if ParseBlockState("minecraft:air[fake=true]").IsAir() {
		t.Error("air with properties should not be the default state")
	}
}

func TestBlockStateClone(t *testing.T) {
	a := ParseBlockState("minecraft:chest[facing=north]")
	b := a.Clone()
	b.Properties["facing"] = "south"
	if a.Properties["facing"] != "north" {
		t.Fatal("Clone shares the properties map")
	}
}
