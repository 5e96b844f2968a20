package stores

import "testing"

func TestSystemForState(t *testing.T) {
	tests := []struct {
		state string
		want  SystemKind
	}{
		{"KY", SystemIndependent},
		{"tx", SystemIndependent},
		{"CA", SystemChainFriendly},
		{"IL", SystemChainFriendly},
		{"PA", SystemStateControlled},
		{"VA", SystemStateControlled},
		{"ZZ", SystemIndependent}, // unlisted states read as independent
	}
	for _, tt := range tests {
		sys := SystemForState(tt.state)
		if sys.Kind != tt.want {
			t.Errorf("SystemForState(%q).Kind = %q, want %q", tt.state, sys.Kind, tt.want)
		}
		if sys.AllocationTip == "" || len(sys.Steps) == 0 {
			t.Errorf("SystemForState(%q) missing hunt guidance", tt.state)
		}
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{"Chicago, IL, USA", "IL", true},
		{"Atlanta, GA 30344, USA", "GA", true},
		{"dallas, tx", "TX", true},
		{"Richmond, VA, USA", "VA", true},
		{"30344", "", false},
		{"boise", "", false},
		{"it is what it is", "", false}, // bare two-letter words are not states
	}
	for _, tt := range tests {
		got, ok := StateOf(tt.text)
		if got != tt.want || ok != tt.found {
			t.Errorf("StateOf(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.found)
		}
	}
}

func TestWebsite(t *testing.T) {
	if url, ok := Website("PA"); !ok || url == "" {
		t.Error("PA should publish a state lottery site")
	}
	if _, ok := Website("KY"); ok {
		t.Error("independent-market states have no state site")
	}
}

func TestSearchKeywordForState(t *testing.T) {
	if kw := searchKeywordForState("KY"); kw != "liquor store" {
		t.Errorf("KY keyword = %q, want the independent default", kw)
	}
	if kw := searchKeywordForState("PA"); kw != "fine wine & good spirits" {
		t.Errorf("PA keyword = %q, want the state outlet name", kw)
	}
	if kw := searchKeywordForState("MS"); kw != "mississippi abc" {
		t.Errorf("MS keyword = %q, want the state outlet name", kw)
	}
}

func TestRegionState(t *testing.T) {
	if got := regionState("dallas_tx"); got != "TX" {
		t.Errorf("regionState = %q, want TX", got)
	}
	if got := regionState("nowhere"); got != "" {
		t.Errorf("regionState on a bare key = %q, want empty", got)
	}
}
