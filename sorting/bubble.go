package sorting

// Bubble is the classic bubble sort. It always performs n-1 passes over the
// copy it sorts, even when the input is already in descending order.
func Bubble(in []int) ([]int, int) {
	arr := clone(in)
	n := len(arr)
	passes := 0

	for i := 0; i < n-1; i++ {
		passes++
		for j := 0; j < n-1-i; j++ {
			if arr[j] < arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
			}
		}
	}

	return arr, passes
}

// BubbleOptimized stops after the first pass that makes no swap. The
// returned pass count is the number of passes actually executed.
func BubbleOptimized(in []int) ([]int, int) {
	arr := clone(in)
	n := len(arr)
	passes := 0

	for i := 0; i < n-1; i++ {
		passes++
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if arr[j] < arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return arr, passes
}

func clone(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
