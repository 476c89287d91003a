package bffsdk

import (
	"encoding/json"
	"slices"

	"go.uber.org/zap/buffer"
)

// Key identifies a cached operation result: the operation name followed by
// the operation's variable values ordered by variable name. Two requests
// with the same logical variables always share a key regardless of map
// iteration order, which is what lets the fetch layer coalesce and
// deduplicate them.
type Key []any

// BuildKey derives the cache key for an operation and its variables. A nil
// or empty variables map yields just the operation name.
func BuildKey(operation string, variables map[string]any) Key {
	key := make(Key, 0, len(variables)+1)
	key = append(key, operation)

	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		key = append(key, variables[name])
	}
	return key
}

var _buffers = buffer.NewPool()

// String renders the key for use with the cache store. encoding/json writes
// map keys in sorted order, so nested values serialize deterministically
// too. Key serialization sits on every fetch, hence the pooled buffers.
func (k Key) String() string {
	buf := _buffers.Get()
	defer buf.Free()

	enc := json.NewEncoder(buf)
	for _, part := range k {
		if err := enc.Encode(part); err != nil {
			// Unencodable values still need a stable marker.
			_ = buf.WriteByte(0)
		}
	}
	return buf.String()
}
