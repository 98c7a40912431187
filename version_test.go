package id3

import (
	"bytes"
	"testing"
)

func TestProbeVersionV2r3(t *testing.T) {
	data := append([]byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 0}, make([]byte, 50)...)
	v, ok, err := ProbeVersion(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeVersion: %v", err)
	}
	if !ok || v != VersionV2r3 {
		t.Fatalf("got version=%v ok=%v, want VersionV2r3", v, ok)
	}
}

func TestProbeVersionV1r1(t *testing.T) {
	tail := make([]byte, 128)
	copy(tail[0:3], "TAG")
	tail[125] = 0
	tail[126] = 5
	data := append(make([]byte, 20), tail...)
	v, ok, err := ProbeVersion(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeVersion: %v", err)
	}
	if !ok || v != VersionV1r1 {
		t.Fatalf("got version=%v ok=%v, want VersionV1r1", v, ok)
	}
}

func TestProbeVersionsBothPresent(t *testing.T) {
	v2 := append([]byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0})
	tail := make([]byte, 128)
	copy(tail[0:3], "TAG")
	data := append(v2, tail...)
	versions, err := ProbeVersions(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeVersions: %v", err)
	}
	if len(versions) != 2 || versions[0] != VersionV2r4 {
		t.Fatalf("got %v, want [V2r4, V1-ish]", versions)
	}
}

func TestProbeVersionAbsent(t *testing.T) {
	data := make([]byte, 50)
	_, ok, err := ProbeVersion(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ProbeVersion: %v", err)
	}
	if ok {
		t.Fatalf("expected no tag found")
	}
}
