package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "charts.toml")
	p.OnLoadComplete(ctx, "charts.toml", 2, time.Second, nil)
	p.OnAssembleStart(ctx, 2)
	p.OnAssembleComplete(ctx, 5, time.Second, nil)
	p.OnPublishStart(ctx, "store")
	p.OnPublishComplete(ctx, "store", 1024, time.Second, nil)

	// Store hooks
	s := NoopStoreHooks{}
	s.OnStoreHit(ctx, "document")
	s.OnStoreMiss(ctx, "event")
	s.OnStoreSet(ctx, "document", 1024)

	// Bridge hooks
	b := NoopBridgeHooks{}
	b.OnDispatch(ctx, 1, 1024)
	b.OnResponse(ctx, "click", time.Millisecond)
	b.OnError(ctx, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := Bridge().(NoopBridgeHooks); !ok {
		t.Error("Bridge() should return NoopBridgeHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customBridge := &testBridgeHooks{}
	SetBridgeHooks(customBridge)
	if Bridge() != customBridge {
		t.Error("SetBridgeHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Bridge().(NoopBridgeHooks); !ok {
		t.Error("Reset() should restore NoopBridgeHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStoreHooks{}
	SetStoreHooks(custom)

	// Setting nil should be ignored
	SetStoreHooks(nil)

	if Store() != custom {
		t.Error("SetStoreHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testStoreHooks struct{ NoopStoreHooks }
type testBridgeHooks struct{ NoopBridgeHooks }
