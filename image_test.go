package max72xx

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/max72xx/draw"
	"github.com/BeatGlow/max72xx/pixel"
)

func TestImageAdapter(t *testing.T) {
	d, rec := newTestDev(t, 2)
	var _ draw.Image = d

	if b := d.Bounds(); b != image.Rect(0, 0, 16, 8) {
		t.Errorf("unexpected bounds %s", b)
	}
	if d.ColorModel() != pixel.MonoModel {
		t.Error("expected mono color model")
	}

	d.Set(3, 2, color.White)
	if on, _ := d.Point(2, 3); !on {
		t.Error("expected Set to light (2,3)")
	}
	if len(rec.Ops) != 1 {
		t.Errorf("expected Set to update the device, got %d transactions", len(rec.Ops))
	}
	if d.At(3, 2) != pixel.On || d.At(3, 3) != pixel.Off || d.At(99, 0) != pixel.Off {
		t.Error("unexpected At results")
	}

	rec.Ops = nil
	d.Set(16, 0, color.White)
	d.Set(-1, 0, color.White)
	expectWrites(t, rec)

	d.Set(3, 2, color.Black)
	if on, _ := d.Point(2, 3); on {
		t.Error("expected Set to clear (2,3)")
	}
}

func TestImageDraw(t *testing.T) {
	d, rec := newTestDev(t, 2)
	src := pixel.NewMonoImage(20, 8)
	draw.Line(src, image.Pt(0, 0), image.Pt(7, 7), pixel.On)
	draw.HorizontalLine(src, 8, 0, 8, pixel.On)

	if err := d.Draw(src); err != nil {
		t.Fatal(err)
	}
	// Rows 0-7 changed, one batched transaction each.
	if len(rec.Ops) != RowSize {
		t.Errorf("expected %d transactions, got %d", RowSize, len(rec.Ops))
	}
	for i := 0; i < RowSize; i++ {
		if on, _ := d.Point(i, i); !on {
			t.Errorf("expected (%d,%d) on", i, i)
		}
	}
	if v, _ := d.Row(1, 0); v != 0xff {
		t.Errorf("expected device 1 row 0 lit, got %#02x", v)
	}

	snap := d.Image()
	for y := 0; y < RowSize; y++ {
		for x := 0; x < d.Columns(); x++ {
			if snap.At(x, y) != d.At(x, y) {
				t.Fatalf("snapshot differs at (%d,%d)", x, y)
			}
		}
	}

	// Pixels outside a smaller image are cleared.
	if err := d.Draw(image.NewUniform(color.White)); err != nil {
		t.Fatal(err)
	}
	small := image.NewGray(image.Rect(4, 4, 8, 8))
	if err := d.Draw(small); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Row(1, 7); v != 0 {
		t.Errorf("expected cleared row, got %#02x", v)
	}
}

func TestDrawPackageOnDev(t *testing.T) {
	d, _ := newTestDev(t, 2)
	if err := d.SetAutoUpdate(false); err != nil {
		t.Fatal(err)
	}
	draw.Rectangle(d, image.Rect(0, 0, 16, 8), pixel.On)
	for col, want := range map[int]byte{0: 0xff, 15: 0xff, 7: 0x81, 8: 0x81} {
		if v, _ := d.Column(col); v != want {
			t.Errorf("column %d: expected %#02x, got %#02x", col, want, v)
		}
	}

	draw.Invert(d, image.Rect(0, 0, 8, 8))
	for col, want := range map[int]byte{0: 0x00, 7: 0x7e, 8: 0x81} {
		if v, _ := d.Column(col); v != want {
			t.Errorf("inverted column %d: expected %#02x, got %#02x", col, want, v)
		}
	}
}
