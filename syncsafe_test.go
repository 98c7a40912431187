package id3

import "testing"

func TestDecodeSyncSafe4(t *testing.T) {
	cases := []struct {
		in   [4]byte
		want int
		ok   bool
	}{
		{[4]byte{0, 0, 0, 0}, 0, true},
		{[4]byte{0, 0, 1, 0}, 128, true},
		{[4]byte{0, 0, 0x7f, 0x7f}, 0x7f*128 + 0x7f, true},
		{[4]byte{0x80, 0, 0, 0}, 0, false},
	}
	for _, c := range cases {
		got, ok := decodeSyncSafe4(c.in)
		if ok != c.ok {
			t.Fatalf("decodeSyncSafe4(%v) ok = %v, want %v", c.in, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("decodeSyncSafe4(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSyncSafeRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 127, 128, 268435455} {
		enc := encodeSyncSafe4(v)
		got, ok := decodeSyncSafe4(enc)
		if !ok {
			t.Fatalf("decodeSyncSafe4(encodeSyncSafe4(%d)) not ok", v)
		}
		if got != v {
			t.Fatalf("round trip of %d produced %d", v, got)
		}
	}
}

func TestDecodeBigEndian4(t *testing.T) {
	if got := decodeBigEndian4([4]byte{0, 0, 1, 0}); got != 256 {
		t.Fatalf("got %d, want 256", got)
	}
	enc := encodeBigEndian4(0x01020304)
	if decodeBigEndian4(enc) != 0x01020304 {
		t.Fatalf("round trip failed: %v", enc)
	}
}
