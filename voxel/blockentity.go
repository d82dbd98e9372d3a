package voxel

// BlockEntity carries the extra compound data of blocks that need it
// (chests, signs, command blocks). Positions are absolute structure
// coordinates and follow every geometric transform.
type BlockEntity struct {
	ID   string         // e.g., "minecraft:chest"
	Pos  Pos            // Position within the structure
	Data map[string]any // NBT data (excluding position and id)
}

// Clone creates a deep copy of the BlockEntity.
func (be *BlockEntity) Clone() *BlockEntity {
	if be == nil {
		return nil
	}
	data := make(map[string]any, len(be.Data))
	for k, v := range be.Data {
		data[k] = deepCopy(v)
	}
	return &BlockEntity{
		ID:   be.ID,
		Pos:  be.Pos,
		Data: data,
	}
}

// deepCopy performs a deep copy of interface{} values.
func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		copy := make(map[string]any, len(val))
		for k, v := range val {
			copy[k] = deepCopy(v)
		}
		return copy
	case []any:
		copy := make([]any, len(val))
		for i, v := range val {
			copy[i] = deepCopy(v)
		}
		return copy
	case []byte:
		b := make([]byte, len(val))
		copy(b, val)
		return b
	default:
		return v
	}
}
