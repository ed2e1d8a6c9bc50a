package testing

import (
	"bytes"
	"fmt"
	"testing"
)

// RunKVDBBenchmarks runs a standard benchmark suite for a KVDB implementation.
func RunKVDBBenchmarks(b *testing.B, name string, factory DBFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("Set", func(b *testing.B) {
			database := factory()
			defer database.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				database.Set(fmt.Sprintf("key-%d", i), []byte("value"))
			}
		})

		b.Run("SetExisting", func(b *testing.B) {
			database := factory()
			defer database.Close()
			database.Set("key", []byte("value"))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				database.Set("key", []byte("value"))
			}
		})

		b.Run("Get", func(b *testing.B) {
			database := factory()
			defer database.Close()
			database.Set("key", []byte("value"))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				database.Get("key")
			}
		})

		b.Run("Has", func(b *testing.B) {
			database := factory()
			defer database.Close()
			database.Set("key", []byte("value"))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				database.Has("key")
			}
		})

		b.Run("Delete", func(b *testing.B) {
			database := factory()
			defer database.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				database.Delete("key")
			}
		})

		b.Run("SaveLoad", func(b *testing.B) {
			database := factory()
			defer database.Close()
			for i := 0; i < 1000; i++ {
				database.Set(fmt.Sprintf("key-%d", i), []byte("value"))
			}

			b.Run("Save", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					var buf bytes.Buffer
					if err := database.Save(&buf); err != nil {
						b.Fatalf("Save failed: %v", err)
					}
				}
			})

			b.Run("Load", func(b *testing.B) {
				var buf bytes.Buffer
				if err := database.Save(&buf); err != nil {
					b.Fatalf("Save failed: %v", err)
				}
				snapshot := buf.Bytes()

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := database.Load(bytes.NewReader(snapshot)); err != nil {
						b.Fatalf("Load failed: %v", err)
					}
				}
			})
		})
	})
}
