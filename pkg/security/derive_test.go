package security

import (
	"bytes"
	"errors"
	"net"
	"testing"
)

var (
	initiatorAddr = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	responderAddr = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}
)

func TestDerivePmk(t *testing.T) {
	pmk, err := DerivePmk("correcthorse", "com.example.chat")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	if !ValidatePmk(pmk) {
		t.Fatalf("derived PMK has length %d, want %d", len(pmk), PmkSize)
	}

	// Deterministic: both peers derive the same key.
	again, err := DerivePmk("correcthorse", "com.example.chat")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	if !bytes.Equal(pmk, again) {
		t.Error("repeated derivation produced a different PMK")
	}

	// Service names match case-insensitively.
	upper, err := DerivePmk("correcthorse", "COM.EXAMPLE.CHAT")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	if !bytes.Equal(pmk, upper) {
		t.Error("service name case changed the derived PMK")
	}

	// Different service names or passphrases isolate the keys.
	other, err := DerivePmk("correcthorse", "com.example.files")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	if bytes.Equal(pmk, other) {
		t.Error("different service names derived the same PMK")
	}
	other, err = DerivePmk("batterystaple", "com.example.chat")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	if bytes.Equal(pmk, other) {
		t.Error("different passphrases derived the same PMK")
	}
}

func TestDerivePmk_InvalidInput(t *testing.T) {
	if _, err := DerivePmk("short", "com.example.chat"); !errors.Is(err, ErrInvalidPassphrase) {
		t.Errorf("DerivePmk error = %v, want ErrInvalidPassphrase", err)
	}
	if _, err := DerivePmk("correcthorse", ""); !errors.Is(err, ErrInvalidServiceName) {
		t.Errorf("DerivePmk error = %v, want ErrInvalidServiceName", err)
	}
	if _, err := DerivePmk("short", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DerivePmk error = %v, want ErrInvalidArgument kind", err)
	}
}

func TestComputePmkId(t *testing.T) {
	pmk := make([]byte, PmkSize)
	pmk[0] = 0x42

	pmkId, err := ComputePmkId(pmk, initiatorAddr, responderAddr)
	if err != nil {
		t.Fatalf("ComputePmkId failed: %v", err)
	}
	if !ValidatePmkId(pmkId) {
		t.Fatalf("computed PMKID has length %d, want %d", len(pmkId), PmkIdSize)
	}

	again, err := ComputePmkId(pmk, initiatorAddr, responderAddr)
	if err != nil {
		t.Fatalf("ComputePmkId failed: %v", err)
	}
	if !bytes.Equal(pmkId, again) {
		t.Error("repeated computation produced a different PMKID")
	}

	// The identifier binds the peer pair and direction.
	swapped, err := ComputePmkId(pmk, responderAddr, initiatorAddr)
	if err != nil {
		t.Fatalf("ComputePmkId failed: %v", err)
	}
	if bytes.Equal(pmkId, swapped) {
		t.Error("swapped peer addresses produced the same PMKID")
	}

	otherPmk := make([]byte, PmkSize)
	otherId, err := ComputePmkId(otherPmk, initiatorAddr, responderAddr)
	if err != nil {
		t.Fatalf("ComputePmkId failed: %v", err)
	}
	if bytes.Equal(pmkId, otherId) {
		t.Error("different PMKs produced the same PMKID")
	}
}

func TestComputePmkId_InvalidInput(t *testing.T) {
	if _, err := ComputePmkId(make([]byte, PmkSize-1), initiatorAddr, responderAddr); !errors.Is(err, ErrInvalidPmk) {
		t.Errorf("ComputePmkId error = %v, want ErrInvalidPmk", err)
	}
	if _, err := ComputePmkId(make([]byte, PmkSize), initiatorAddr[:4], responderAddr); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("ComputePmkId error = %v, want ErrInvalidAddress", err)
	}
	if _, err := ComputePmkId(make([]byte, PmkSize), initiatorAddr, nil); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("ComputePmkId error = %v, want ErrInvalidAddress", err)
	}
}

// TestDerivedCredentials builds a public key config from derived
// material end to end.
func TestDerivedCredentials(t *testing.T) {
	pmk, err := DerivePmk("correcthorse", "com.example.chat")
	if err != nil {
		t.Fatalf("DerivePmk failed: %v", err)
	}
	pmkId, err := ComputePmkId(pmk, initiatorAddr, responderAddr)
	if err != nil {
		t.Fatalf("ComputePmkId failed: %v", err)
	}

	b, err := NewBuilder(CipherSuitePK256)
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	if err := b.SetPmk(pmk); err != nil {
		t.Fatalf("SetPmk failed: %v", err)
	}
	if err := b.SetPmkId(pmkId); err != nil {
		t.Fatalf("SetPmkId failed: %v", err)
	}

	cfg, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !cfg.IsValid() {
		t.Error("config built from derived credentials fails IsValid")
	}
}
