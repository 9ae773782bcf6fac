package slotlist

import "testing"

func BenchmarkPushBack(b *testing.B) {
	for _, backing := range []Backing{BackingHeap, BackingMmap} {
		b.Run(backing.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				l, err := New[int](0, &Options{Backing: backing})
				if err != nil {
					b.Fatal(err)
				}
				for i := range 1024 {
					if _, err := l.PushBack(i); err != nil {
						b.Fatal(err)
					}
				}
				l.Close()
			}
		})
	}
}

func BenchmarkPushPop(b *testing.B) {
	l, err := New[int](64, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Close()

	b.ReportAllocs()
	for b.Loop() {
		l.PushBack(1)
		l.PopFront()
	}
}

func BenchmarkIndexToSlot(b *testing.B) {
	l, err := New[int](1024, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Close()
	for i := range 1024 {
		l.PushBack(i)
	}
	sink := Sentinel

	b.Run("sorted", func(b *testing.B) {
		for i := 0; b.Loop(); i++ {
			sink = l.IndexToSlot(i & 1023)
		}
	})

	l.PushFront(-1)
	l.PopBack()
	b.Run("unsorted", func(b *testing.B) {
		for i := 0; b.Loop(); i++ {
			sink = l.IndexToSlot(i & 1023)
		}
	})
	_ = sink
}

func BenchmarkCompact(b *testing.B) {
	l, err := New[int](4096, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer l.Close()
	for i := range 4096 {
		if i%2 == 0 {
			l.PushBack(i)
		} else {
			l.PushFront(i)
		}
	}

	for b.Loop() {
		l.Compact()
		l.Remove(l.IndexToSlot(2048))
		l.PushFront(0)
	}
}
