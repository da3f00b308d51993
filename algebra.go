package corpusdex

// Posting-list algebra: sort-merge intersect/union/complement over
// strictly-ascending, duplicate-free uint32 slices. §4.G. These are the
// primitives the query evaluator composes; each allocates its output slice
// once, sized to the largest possible result, and runs in linear time in
// the input sizes.

// Intersect returns the sorted list of ids present in both a and b,
// advancing whichever head is smaller and emitting on equality.
func Intersect(a, b []uint32) []uint32 {
	result := make([]uint32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return result
}

// Union returns the sorted list of ids present in either a or b, emitting
// each shared id once.
func Union(a, b []uint32) []uint32 {
	result := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		default:
			result = append(result, b[j])
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}

// Complement returns every id in [0, n) not present in list, in ascending
// order. list must already be sorted ascending.
func Complement(list []uint32, n uint32) []uint32 {
	cap := int(n) - len(list)
	if cap < 0 {
		cap = 0
	}
	result := make([]uint32, 0, cap)
	li := 0
	for id := uint32(0); id < n; id++ {
		for li < len(list) && list[li] < id {
			li++
		}
		if li >= len(list) || list[li] != id {
			result = append(result, id)
		}
	}
	return result
}
