package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Indices returns the positions of every set flag.
func Indices(flags []bool) []int {
	var out []int
	for i, ok := range flags {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
