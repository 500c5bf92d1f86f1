package lists

import "sort"

// Distance pairs the smallest left value with the smallest right value, the
// second smallest with the second smallest, and so on, and sums the absolute
// differences. l is not modified.
func Distance(l Lists) int64 {
	left := sorted(l.Left)
	right := sorted(l.Right)

	var sum int64
	for i := range left {
		if i >= len(right) {
			break
		}
		d := int64(left[i]) - int64(right[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Similarity adds up each left value multiplied by the number of times it
// appears in the right list.
func Similarity(l Lists) int64 {
	counts := make(map[int]int64, len(l.Right))
	for _, v := range l.Right {
		counts[v]++
	}

	var score int64
	for _, v := range l.Left {
		score += int64(v) * counts[v]
	}
	return score
}

func sorted(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	sort.Ints(c)
	return c
}
