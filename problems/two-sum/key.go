package twosum

// FindPairIndices returns the positions of two distinct elements of nums that
// add up to target, or an empty slice when no such pair exists.
// The first match in scan order wins, and each value is remembered at its first
// position so earlier indices are preferred.
func FindPairIndices(nums []int, target int) []int {
	seen := make(map[int]int, len(nums))
	for j, n := range nums {
		if i, ok := seen[target-n]; ok {
			return []int{i, j}
		}
		if _, ok := seen[n]; !ok {
			seen[n] = j
		}
	}
	return []int{}
}
