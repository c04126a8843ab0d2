package audio

import "testing"

// Speaker init needs a real audio device, so tests only cover the
// uninitialized no-op path

func TestUninitializedEngineIsNoop(t *testing.T) {
	e := NewEngine()

	// Must not panic or touch the speaker
	e.PlaySelect()
	e.PlayError()
	e.Close()

	if e.initialized {
		t.Error("Expected engine to remain uninitialized")
	}
}
