package goparl_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/goparl"
)

func readExample(tb testing.TB, name string) []byte {
	tb.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		tb.Fatal(err)
	}
	return b
}

// generateVote returns a vote with n people and a matching sum.
func generateVote(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n*16 + 48)
	fmt.Fprintf(&buf, `{"sum":%d,"vote":"DAFUER","people":[`, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"person-%d"`, i)
	}
	buf.WriteString("]}")
	return buf.Bytes()
}

func Benchmark_Validate_Person_Decoded(b *testing.B) {
	doc := minimal(goparl.KindPerson)
	doc["organisations"] = []any{map[string]any{"id": "o1", "start": "2009-10-01", "end": "2014-05-25"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goparl.Validate(goparl.KindPerson, doc); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ValidateBytes_Paper(b *testing.B) {
	data := readExample(b, "paper_ex1.json")
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goparl.ValidateBytes(goparl.KindPaper, data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ValidateBytes_Paper_Enforced(b *testing.B) {
	data := readExample(b, "paper_ex1.json")
	opt := goparl.Opt{Strictness: goparl.Strictness{OnDuplicateKey: goparl.Error}, MaxDepth: 16}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := goparl.ValidateBytes(goparl.KindPaper, data, opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ValidateReader_LargeVote(b *testing.B) {
	data := generateVote(10000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := goparl.ValidateReader(goparl.KindVote, bytes.NewReader(data))
		if err != nil || !r.Valid {
			b.Fatalf("%v %v", err, r.Violations)
		}
	}
}
