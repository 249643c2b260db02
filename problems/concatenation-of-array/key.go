package concatenation

// Concatenate returns a new slice holding nums followed by a second copy of nums.
func Concatenate(nums []int) []int {
	out := make([]int, 2*len(nums))
	copy(out, nums)
	copy(out[len(nums):], nums)
	return out
}
