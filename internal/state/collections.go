package state

// Helpers for id-keyed collections. They never modify their input slice.

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

// upsert replaces the item with the same id or appends it.
func upsert[T any](items []T, item T, key func(T) string) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)

	if i := indexOf(out, key(item), key); i >= 0 {
		out[i] = item
		return out
	}
	return append(out, item)
}

// appendNew appends item unless its id is already present. The second
// return value is false when the collection is unchanged.
func appendNew[T any](items []T, item T, key func(T) string) ([]T, bool) {
	if indexOf(items, key(item), key) >= 0 {
		return items, false
	}
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item), true
}

// removeWhere filters out matching items. The second return value is false
// when nothing was removed.
func removeWhere[T any](items []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}

// nonNil turns a nil slice into an empty one so it encodes as [].
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
