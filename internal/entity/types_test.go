package entity

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/mcwire/internal/protocol"
)

func TestFacingOrdinalBoundary(t *testing.T) {
	// last declared variant decodes, count itself does not
	var buf bytes.Buffer
	if err := FacingEast.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := ReadFacing(bytes.NewReader(buf.Bytes()))
	if err != nil || f != FacingEast {
		t.Fatalf("last ordinal: got %v %v", f, err)
	}

	buf.Reset()
	if err := protocol.WriteVarInt(&buf, int32(facingCount)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadFacing(bytes.NewReader(buf.Bytes())); !errors.Is(err, protocol.ErrInvalidEnumOrdinal) {
		t.Fatalf("expected ErrInvalidEnumOrdinal, got %v", err)
	}
}

func TestPoseRoundTrip(t *testing.T) {
	for p := PoseStanding; p < poseCount; p++ {
		var buf bytes.Buffer
		if err := p.Write(&buf); err != nil {
			t.Fatalf("write %v: %v", p, err)
		}
		out, err := ReadPose(bytes.NewReader(buf.Bytes()))
		if err != nil || out != p {
			t.Fatalf("round trip %v: got %v %v", p, out, err)
		}
	}
}

func TestMainArmIsSingleRawByte(t *testing.T) {
	var buf bytes.Buffer
	if err := MainArmRight.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01}) {
		t.Fatalf("encoding: got %#v", buf.Bytes())
	}
	arm, err := ReadMainArm(bytes.NewReader([]byte{0x00}))
	if err != nil || arm != MainArmLeft {
		t.Fatalf("decode left: got %v %v", arm, err)
	}
	if _, err := ReadMainArm(bytes.NewReader([]byte{0x02})); !errors.Is(err, protocol.ErrInvalidEnumOrdinal) {
		t.Fatalf("expected ErrInvalidEnumOrdinal, got %v", err)
	}
}

func TestVillagerDataRoundTripAndDefault(t *testing.T) {
	def := DefaultVillagerData()
	if def.Level != 1 {
		t.Fatalf("default level: got %d want 1", def.Level)
	}
	if def.Kind != VillagerKindPlains || def.Profession != ProfessionNone {
		t.Fatalf("default: got %+v", def)
	}

	d := VillagerData{Kind: VillagerKindSwamp, Profession: ProfessionCleric, Level: 3}
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := ReadVillagerData(bytes.NewReader(buf.Bytes()))
	if err != nil || out != d {
		t.Fatalf("round trip: got %+v %v", out, err)
	}
}

func TestVillagerDataRejectsBadProfession(t *testing.T) {
	var buf bytes.Buffer
	_ = protocol.WriteVarInt(&buf, int32(VillagerKindPlains))
	_ = protocol.WriteVarInt(&buf, int32(professionCount))
	_ = protocol.WriteVarInt(&buf, 1)
	if _, err := ReadVillagerData(bytes.NewReader(buf.Bytes())); !errors.Is(err, protocol.ErrInvalidEnumOrdinal) {
		t.Fatalf("expected ErrInvalidEnumOrdinal, got %v", err)
	}
}

func TestEnumDefaults(t *testing.T) {
	// defaults are fixed by the protocol, not by ordinal zero
	if DefaultPose != PoseStanding {
		t.Fatalf("pose default: got %v", DefaultPose)
	}
	if DefaultMainArm != MainArmRight {
		t.Fatalf("main arm default: got %v", DefaultMainArm)
	}
	if DefaultVillagerKind != VillagerKindPlains || DefaultProfession != ProfessionNone {
		t.Fatalf("villager defaults: got %v %v", DefaultVillagerKind, DefaultProfession)
	}
	if DefaultBoatKind != BoatKindOak {
		t.Fatalf("boat default: got %v", DefaultBoatKind)
	}
	if DefaultCatKind != CatKindBlack {
		t.Fatalf("cat default: got %v", DefaultCatKind)
	}
	if DefaultFrogKind != FrogKindTemperate {
		t.Fatalf("frog default: got %v", DefaultFrogKind)
	}
	if DefaultPaintingKind != PaintingKebab {
		t.Fatalf("painting default: got %v", DefaultPaintingKind)
	}
}

func TestEulerAngleRoundTrip(t *testing.T) {
	a := EulerAngle{Pitch: -90, Yaw: 45.5, Roll: 0.25}
	var buf bytes.Buffer
	if err := a.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.Len() != 12 {
		t.Fatalf("encoded length: got %d want 12", buf.Len())
	}
	out, err := ReadEulerAngle(bytes.NewReader(buf.Bytes()))
	if err != nil || out != a {
		t.Fatalf("round trip: got %+v %v", out, err)
	}
}

func TestPaintingKindOrdinalBoundary(t *testing.T) {
	var buf bytes.Buffer
	if err := PaintingDonkeyKong.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	k, err := ReadPaintingKind(bytes.NewReader(buf.Bytes()))
	if err != nil || k != PaintingDonkeyKong {
		t.Fatalf("last ordinal: got %v %v", k, err)
	}
	buf.Reset()
	_ = protocol.WriteVarInt(&buf, int32(paintingCount))
	if _, err := ReadPaintingKind(bytes.NewReader(buf.Bytes())); !errors.Is(err, protocol.ErrInvalidEnumOrdinal) {
		t.Fatalf("expected ErrInvalidEnumOrdinal, got %v", err)
	}
}

func TestParticleRejectsUnknownID(t *testing.T) {
	var buf bytes.Buffer
	_ = protocol.WriteVarInt(&buf, 20)
	if _, err := ReadParticle(bytes.NewReader(buf.Bytes())); !errors.Is(err, protocol.ErrInvalidEnumOrdinal) {
		t.Fatalf("expected ErrInvalidEnumOrdinal, got %v", err)
	}
	buf.Reset()
	if err := ParticleEntityEffect.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := ReadParticle(bytes.NewReader(buf.Bytes()))
	if err != nil || p != ParticleEntityEffect {
		t.Fatalf("round trip: got %v %v", p, err)
	}
}
