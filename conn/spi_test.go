package conn

import (
	"testing"
	"unsafe"

	"github.com/BeatGlow/max72xx/internal/ioctl"
)

func TestTransferLayout(t *testing.T) {
	if size := unsafe.Sizeof(transfer{}); size != 32 {
		t.Fatalf("expected spi_ioc_transfer to be 32 bytes, got %d", size)
	}
	if off := unsafe.Offsetof(transfer{}.speedHz); off != 20 {
		t.Errorf("expected speed_hz at offset 20, got %d", off)
	}
	if off := unsafe.Offsetof(transfer{}.csChange); off != 27 {
		t.Errorf("expected cs_change at offset 27, got %d", off)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		n    int
		want ioctl.Command
	}{
		{1, 0x40206b00},
		{2, 0x40406b00},
	}
	for _, test := range tests {
		if v := message(test.n); v != test.want {
			t.Errorf("SPI_IOC_MESSAGE(%d): expected %#x, got %#x", test.n, uintptr(test.want), uintptr(v))
		}
	}
}

func TestMode(t *testing.T) {
	for mode, want := range map[Mode]string{Mode0: "Mode0", Mode1: "Mode1", Mode2: "Mode2", Mode3: "Mode3"} {
		if s := mode.String(); s != want {
			t.Errorf("expected %q, got %q", want, s)
		}
	}
	if DevicePath(1, 2) != "/dev/spidev1.2" {
		t.Errorf("unexpected device path %q", DevicePath(1, 2))
	}
}
