package memory

import "testing"

func TestNewRAMRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := NewRAM(100, nil); err == nil {
		t.Errorf("NewRAM(100, nil) = nil error, want error (100 is not a power of 2)")
	}
}

func TestNewRAMRejectsTooLarge(t *testing.T) {
	if _, err := NewRAM(1<<17, nil); err == nil {
		t.Errorf("NewRAM(1<<17, nil) = nil error, want error (exceeds 64k)")
	}
}

func TestReadWriteMasksAddress(t *testing.T) {
	b, err := NewRAM(256, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	b.Write(0x0042, 0xAB)
	// 0x0142 aliases to 0x0042 in a 256-byte bank.
	if got := b.Read(0x0142, false); got != 0xAB {
		t.Errorf("Read(0x0142) = %#02x, want 0xAB (aliased)", got)
	}
}

func TestDatabusValTracksLastAccess(t *testing.T) {
	b, err := NewRAM(16, nil)
	if err != nil {
		t.Fatalf("NewRAM: %v", err)
	}
	b.Write(0x0, 0x55)
	if got := b.DatabusVal(); got != 0x55 {
		t.Errorf("DatabusVal() = %#02x, want 0x55", got)
	}
	b.Read(0x0, true)
	if got := b.DatabusVal(); got != 0x55 {
		t.Errorf("DatabusVal() after read_only read = %#02x, want unchanged 0x55", got)
	}
}

func TestLatestDatabusValFollowsParentChain(t *testing.T) {
	parent, err := NewRAM(16, nil)
	if err != nil {
		t.Fatalf("NewRAM parent: %v", err)
	}
	child, err := NewRAM(16, parent)
	if err != nil {
		t.Fatalf("NewRAM child: %v", err)
	}
	parent.Write(0x0, 0x99)
	if got := LatestDatabusVal(child); got != 0x99 {
		t.Errorf("LatestDatabusVal(child) = %#02x, want 0x99 from parent", got)
	}
}
