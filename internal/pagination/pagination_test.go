package pagination

import "testing"

func TestDefaults(t *testing.T) {
	p := Params{}
	p.Defaults()
	if p.Skip != 0 || p.Limit != DefaultLimit {
		t.Errorf("expected skip=0 limit=%d, got %+v", DefaultLimit, p)
	}

	p = Params{Skip: 10, Limit: 25}
	p.Defaults()
	if p.Skip != 10 || p.Limit != 25 {
		t.Errorf("expected explicit values preserved, got %+v", p)
	}
}
