package sedt

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.Threaded {
		t.Error("defaultOptions().Threaded = true, want false")
	}
	if o.Workers != 0 {
		t.Errorf("defaultOptions().Workers = %d, want 0", o.Workers)
	}
}

func TestOptionsZeroValueIsSerial(t *testing.T) {
	var o Options
	if o.Threaded {
		t.Error("zero-value Options should default to serial execution")
	}
}
