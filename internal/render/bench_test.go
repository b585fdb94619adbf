package render

import "testing"

func BenchmarkRender(b *testing.B) {
	layout, err := NewLayout([]float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330})
	if err != nil {
		b.Fatal(err)
	}
	r := NewRenderer(layout)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Render(float64(i % 360))
	}
}
