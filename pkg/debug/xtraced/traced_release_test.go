//go:build !tracedebug && !traceforce

package xtraced_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/omeyang/tracekit/pkg/debug/xtraced"
)

// 布局不变量：发布变体的 Traced[T] 与裸 T 大小完全一致。
func TestSizeEqualsBareValue(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		if got, want := unsafe.Sizeof(xtraced.Traced[int]{}), unsafe.Sizeof(int(0)); got != want {
			t.Errorf("Sizeof(Traced[int]) = %d, expected %d", got, want)
		}
	})

	t.Run("string", func(t *testing.T) {
		if got, want := unsafe.Sizeof(xtraced.Traced[string]{}), unsafe.Sizeof(""); got != want {
			t.Errorf("Sizeof(Traced[string]) = %d, expected %d", got, want)
		}
	})

	t.Run("byte array", func(t *testing.T) {
		if got, want := unsafe.Sizeof(xtraced.Traced[[16]byte]{}), unsafe.Sizeof([16]byte{}); got != want {
			t.Errorf("Sizeof(Traced[[16]byte]) = %d, expected %d", got, want)
		}
	})

	t.Run("struct", func(t *testing.T) {
		type wide struct {
			A, B int64
			C    string
		}
		if got, want := unsafe.Sizeof(xtraced.Traced[wide]{}), unsafe.Sizeof(wide{}); got != want {
			t.Errorf("Sizeof(Traced[wide]) = %d, expected %d", got, want)
		}
	})

	t.Run("interface", func(t *testing.T) {
		var e error
		if got, want := unsafe.Sizeof(xtraced.Traced[error]{}), unsafe.Sizeof(e); got != want {
			t.Errorf("Sizeof(Traced[error]) = %d, expected %d", got, want)
		}
	})
}

// 发布变体的渲染必须与裸值的标准渲染逐字节一致。
func TestString_BareRendering(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"int", xtraced.New(123).String(), "123"},
		{"negative int", xtraced.New(-1).String(), fmt.Sprint(-1)},
		{"string", xtraced.New("my error").String(), "my error"},
		{"bool", xtraced.New(true).String(), fmt.Sprint(true)},
		{"float", xtraced.New(2.5).String(), fmt.Sprint(2.5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("String = %q, expected %q", tc.got, tc.want)
			}
		})
	}
}

func TestNoCaptureArtifacts(t *testing.T) {
	tv := xtraced.New("v", xtraced.WithSkip(1), xtraced.WithMaxDepth(8))

	if tv.Stack() != nil {
		t.Error("Stack != nil")
	}
	if tv.Resolve() != nil {
		t.Error("Resolve != nil")
	}
	if tv.Fingerprint() != 0 {
		t.Errorf("Fingerprint = %d, expected 0", tv.Fingerprint())
	}
}

func ExampleNew() {
	tv := xtraced.New(123)

	// 发布构建中包装完全透明
	fmt.Println(tv)
	fmt.Println(tv.Unwrap())

	// Output:
	// 123
	// 123
}
