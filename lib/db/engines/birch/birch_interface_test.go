package birch

import (
	"testing"

	"github.com/noticehub/noticehub/lib/db"
	dbtesting "github.com/noticehub/noticehub/lib/db/testing"
)

func Test(t *testing.T) {
	dbtesting.RunKVDBTests(t, "BirchDB", func() db.KVDB {
		return NewBirchDB()
	})
}

func Benchmark(b *testing.B) {
	dbtesting.RunKVDBBenchmarks(b, "BirchDB", func() db.KVDB {
		return NewBirchDB()
	})
}
