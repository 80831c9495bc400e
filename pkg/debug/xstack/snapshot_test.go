package xstack

import (
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestSnapshot_NilReceiver(t *testing.T) {
	var s *Snapshot

	if got := s.Depth(); got != 0 {
		t.Errorf("Depth = %d, expected 0", got)
	}
	if !s.Empty() {
		t.Error("Empty = false, expected true")
	}
	if got := s.PCs(); got != nil {
		t.Errorf("PCs = %v, expected nil", got)
	}
	if got := s.Resolve(); got != nil {
		t.Errorf("Resolve = %v, expected nil", got)
	}
	if got := s.Fingerprint(); got != 0 {
		t.Errorf("Fingerprint = %d, expected 0", got)
	}
}

func TestSnapshot_ResolveIdempotent(t *testing.T) {
	// mock 测试：不可 t.Parallel()
	var calls atomic.Int32
	orig := resolvePCs
	resolvePCs = func(pcs []uintptr) []Frame {
		calls.Add(1)
		return runtimeResolve(pcs)
	}
	defer func() { resolvePCs = orig }()

	snap := Capture()

	first := snap.Resolve()
	second := snap.Resolve()

	if calls.Load() != 1 {
		t.Errorf("resolver invoked %d times, expected exactly once", calls.Load())
	}
	if len(first) == 0 {
		t.Fatal("expected non-empty resolution")
	}
	if len(first) != len(second) {
		t.Fatalf("resolve lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("frame %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSnapshot_ResolveConcurrent(t *testing.T) {
	// mock 测试：不可 t.Parallel()
	var calls atomic.Int32
	orig := resolvePCs
	resolvePCs = func(pcs []uintptr) []Frame {
		calls.Add(1)
		return runtimeResolve(pcs)
	}
	defer func() { resolvePCs = orig }()

	snap := Capture()

	// 并发 Resolve 只允许触发一次解析（sync.Once 一次性写入纪律）
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			frames := snap.Resolve()
			if len(frames) == 0 {
				t.Error("Resolve returned empty frames")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("errgroup: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("resolver invoked %d times under concurrency, expected exactly once", calls.Load())
	}
}

func TestSnapshot_PCsReturnsCopy(t *testing.T) {
	snap := Capture()
	if snap.Empty() {
		t.Fatal("expected non-empty snapshot")
	}

	pcs := snap.PCs()
	if len(pcs) != snap.Depth() {
		t.Fatalf("PCs length %d != Depth %d", len(pcs), snap.Depth())
	}

	// 篡改副本不应影响后续读取
	pcs[0] = 0
	again := snap.PCs()
	if again[0] == 0 {
		t.Error("mutating the returned slice leaked into the snapshot")
	}
}

func TestSnapshot_Fingerprint(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		snap := Capture()
		if snap.Fingerprint() != snap.Fingerprint() {
			t.Error("fingerprint of the same snapshot is not stable")
		}
	})

	t.Run("same path yields same fingerprint", func(t *testing.T) {
		a, b := twinCaptures()
		if a.Fingerprint() != b.Fingerprint() {
			// 同一行构造的两个快照地址序列相同
			t.Errorf("fingerprints differ: %x vs %x", a.Fingerprint(), b.Fingerprint())
		}
	})

	t.Run("different call sites yield different fingerprints", func(t *testing.T) {
		a := Capture()
		b := Capture()
		if a.Fingerprint() == b.Fingerprint() {
			t.Error("captures at different lines produced identical fingerprints")
		}
	})
}

// twinCaptures 在同一调用指令处构造两个快照（循环内同一调用点）。
func twinCaptures() (*Snapshot, *Snapshot) {
	snaps := make([]*Snapshot, 0, 2)
	for i := 0; i < 2; i++ {
		snaps = append(snaps, Capture())
	}
	return snaps[0], snaps[1]
}
