package xstack

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Snapshot 是一次捕获事件得到的调用栈快照。
//
// 原始地址在捕获时立即写入；符号解析推迟到首次 Resolve（或格式化）时
// 进行，结果在快照生命周期内缓存。所有方法均为 nil 接收者安全。
type Snapshot struct {
	pcs    []uintptr
	once   sync.Once
	frames []Frame
}

// Depth 返回捕获到的原始地址数。
func (s *Snapshot) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.pcs)
}

// Empty 报告快照是否一帧未捕获到（平台限制下的合法终态）。
func (s *Snapshot) Empty() bool {
	return s.Depth() == 0
}

// PCs 返回原始指令地址的副本，最内层调用点在前。
func (s *Snapshot) PCs() []uintptr {
	if s == nil || len(s.pcs) == 0 {
		return nil
	}
	out := make([]uintptr, len(s.pcs))
	copy(out, s.pcs)
	return out
}

// Resolve 按需解析全部地址为帧序列，第 0 帧为捕获时的调用点。
//
// 解析是幂等的：首次调用触发符号解析并缓存，后续调用直接返回缓存，
// 不再访问运行时。并发调用安全（sync.Once 一次性写入纪律），
// 已解析后的读取不会阻塞。空快照返回 nil。
//
// 注意：返回的切片为内部缓存，调用方不得修改。
func (s *Snapshot) Resolve() []Frame {
	if s == nil {
		return nil
	}
	s.once.Do(func() {
		if len(s.pcs) == 0 {
			return
		}
		s.frames = resolvePCs(s.pcs)
	})
	return s.frames
}

// Fingerprint 返回地址序列的 xxhash 指纹。
//
// 相同构造路径产生相同指纹，可用于聚合、去重来源相同的快照
// （例如统计某个错误值最常见的产生位置）。空快照返回 0。
// 指纹只依赖原始地址，不触发符号解析。
func (s *Snapshot) Fingerprint() uint64 {
	if s == nil || len(s.pcs) == 0 {
		return 0
	}

	d := xxhash.New()
	var buf [8]byte
	for _, pc := range s.pcs {
		binary.LittleEndian.PutUint64(buf[:], uint64(pc))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
