package sorting

// Insertion sorts a copy of in by growing a descending prefix.
func Insertion(in []int) []int {
	arr := clone(in)
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		// strictly less, equal values stay put
		for j >= 0 && arr[j] < key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
	return arr
}
