package scoring

// ImpactMagnitude scans impact text for its first integer and returns
// it with ok=true. Text without any digits returns (0, false); callers
// that rank by magnitude treat that as 0, so prose-only impacts sort
// last among equals.
func ImpactMagnitude(text string) (int, bool) {
	i := 0
	for i < len(text) && (text[i] < '0' || text[i] > '9') {
		i++
	}
	if i == len(text) {
		return 0, false
	}

	n := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		n = n*10 + int(text[i]-'0')
		i++
	}
	return n, true
}
