package observability

import (
	"errors"
	"testing"
	"time"
)

type recordingRenderHooks struct {
	serializes int
	composes   int
	assembles  int
	writes     int
	lastMode   string
	lastErr    error
}

func (r *recordingRenderHooks) OnSerializeComplete(bytes int, d time.Duration, err error) {
	r.serializes++
}

func (r *recordingRenderHooks) OnComposeComplete(variant string, d time.Duration, err error) {
	r.composes++
}

func (r *recordingRenderHooks) OnAssembleComplete(mode string, bytes int, d time.Duration, err error) {
	r.assembles++
	r.lastMode = mode
	r.lastErr = err
}

func (r *recordingRenderHooks) OnWrite(destination string, bytes int, err error) {
	r.writes++
}

type recordingServeHooks struct {
	requests int
}

func (r *recordingServeHooks) OnRequest(method, path string, status int, d time.Duration) {
	r.requests++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T, want NoopRenderHooks", Render())
	}
	if _, ok := Serve().(NoopServeHooks); !ok {
		t.Errorf("Serve() = %T, want NoopServeHooks", Serve())
	}

	// No-op implementations must tolerate any input.
	Render().OnSerializeComplete(0, 0, errors.New("boom"))
	Render().OnAssembleComplete("", 0, 0, nil)
	Serve().OnRequest("GET", "/", 200, 0)
}

func TestSetRenderHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingRenderHooks{}
	SetRenderHooks(h)

	Render().OnSerializeComplete(10, time.Millisecond, nil)
	Render().OnAssembleComplete("console standalone", 100, time.Millisecond, nil)
	Render().OnWrite("console", 100, nil)

	if h.serializes != 1 || h.assembles != 1 || h.writes != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", h.serializes, h.assembles, h.writes)
	}
	if h.lastMode != "console standalone" {
		t.Errorf("lastMode = %q", h.lastMode)
	}
}

func TestSetServeHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingServeHooks{}
	SetServeHooks(h)

	Serve().OnRequest("GET", "/fragment", 200, time.Microsecond)
	if h.requests != 1 {
		t.Errorf("requests = %d, want 1", h.requests)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetRenderHooks(nil)
	SetServeHooks(nil)

	if Render() == nil {
		t.Error("Render() = nil after SetRenderHooks(nil)")
	}
	if Serve() == nil {
		t.Error("Serve() = nil after SetServeHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	SetRenderHooks(&recordingRenderHooks{})
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T after Reset, want NoopRenderHooks", Render())
	}
}
