package voxel

import (
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"
)

// Air is the canonical identifier of the default block state. Every
// coordinate a structure was never told about reads back as Air.
const Air = "minecraft:air"

// BlockState represents a block with its properties.
type BlockState struct {
	Name       string         // e.g., "minecraft:oak_stairs"
	Properties map[string]any // e.g., {"facing": "north", "half": "bottom"}
}

// AirState returns the default block state.
func AirState() BlockState {
	return BlockState{Name: Air}
}

// IsAir reports whether the state is the default air state.
func (b BlockState) IsAir() bool {
	return b.Name == Air && len(b.Properties) == 0
}

// Clone creates a deep copy of the BlockState.
func (b BlockState) Clone() BlockState {
	props := make(map[string]any, len(b.Properties))
	maps.Copy(props, b.Properties)
	return BlockState{
		Name:       b.Name,
		Properties: props,
	}
}

// String returns the canonical form of the block state:
// "namespace:name[key=value,...]" with property keys sorted. Two states are
// the same palette entry exactly when their canonical forms are equal.
func (b BlockState) String() string {
	if len(b.Properties) == 0 {
		return b.Name
	}
	keys := make([]string, 0, len(b.Properties))
	for k := range b.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	buf.WriteString(b.Name)
	buf.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		switch v := b.Properties[k].(type) {
		case string:
			buf.WriteString(v)
		case bool:
			buf.WriteString(strconv.FormatBool(v))
		default:
			buf.WriteString(fmt.Sprint(v))
		}
	}
	buf.WriteByte(']')
	return buf.String()
}

// ParseBlockState parses a block state string into a BlockState.
// A missing namespace defaults to "minecraft:". Property values are typed:
// "true"/"false" become bools, integers become int32, everything else stays
// a string.
func ParseBlockState(s string) BlockState {
	name, props, _ := strings.Cut(s, "[")
	name = strings.TrimSpace(name)
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	if props == "" {
		return BlockState{Name: name}
	}

	props = strings.TrimSuffix(props, "]")
	properties := make(map[string]any)

	for part := range strings.SplitSeq(props, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		if value == "true" {
			properties[key] = true
		} else if value == "false" {
			properties[key] = false
		} else if i, err := strconv.Atoi(value); err == nil {
			properties[key] = int32(i)
		} else {
			properties[key] = value
		}
	}

	return BlockState{
		Name:       name,
		Properties: properties,
	}
}
