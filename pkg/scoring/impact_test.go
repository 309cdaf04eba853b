package scoring

import "testing"

func TestImpactMagnitude(t *testing.T) {
	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"30% of shoppers abandon pages", 30, true},
		{"85% of shoppers abandon sites flagged as not secure", 85, true},
		{"up to 15% margin opportunity", 15, true},
		{"N/A", 0, false},
		{"Unknown", 0, false},
		{"", 0, false},
		{"no digits here", 0, false},
		{"improves rank by 5 positions on average", 5, true},
		{"100% of modern browsers", 100, true},
	}

	for _, tt := range tests {
		got, ok := ImpactMagnitude(tt.text)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ImpactMagnitude(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}
