package filter

import (
	"strings"
	"testing"
)

func BenchmarkProcess(b *testing.B) {
	f, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create filter: %v", err)
	}

	block := `<p>Intro</p>
<ace theme="monokai" syntax="golang" line-numbers="1">
package main

func main() {
	println("hello")
}
</ace>
`
	input := strings.Repeat(block, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Process(NewScope(), input); err != nil {
			b.Fatalf("process failed: %v", err)
		}
	}
}
