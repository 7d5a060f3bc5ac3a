package rollgrid

import "testing"

func BenchmarkPixmapSetPixel(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	c := RGB(1, 0.5, 0.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for x := 0; x < 500; x++ {
			pm.SetPixel(x, 500, c)
		}
	}
}

func BenchmarkPixmapClear(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	c := RGB(0.1, 0.1, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pm.Clear(c)
	}
}

func BenchmarkPixmapToImage(b *testing.B) {
	pm := NewPixmap(1280, 720)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pm.ToImage()
	}
}
