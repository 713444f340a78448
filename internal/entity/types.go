package entity

import (
	"io"

	"github.com/danmuck/mcwire/internal/protocol"
)

func writeOrdinal(w io.Writer, ordinal int32) error {
	return protocol.WriteVarInt(w, ordinal)
}

func readOrdinal(r io.ByteReader, count int32) (int32, error) {
	v, err := protocol.ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= count {
		return 0, protocol.ErrInvalidEnumOrdinal
	}
	return v, nil
}

// EulerAngle is an orientation in degrees. The three fields are independent;
// the type is copied by value.
type EulerAngle struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

func (a EulerAngle) Write(w io.Writer) error {
	if err := protocol.WriteFloat32(w, a.Pitch); err != nil {
		return err
	}
	if err := protocol.WriteFloat32(w, a.Yaw); err != nil {
		return err
	}
	return protocol.WriteFloat32(w, a.Roll)
}

func ReadEulerAngle(r io.Reader) (EulerAngle, error) {
	var a EulerAngle
	var err error
	if a.Pitch, err = protocol.ReadFloat32(r); err != nil {
		return EulerAngle{}, err
	}
	if a.Yaw, err = protocol.ReadFloat32(r); err != nil {
		return EulerAngle{}, err
	}
	if a.Roll, err = protocol.ReadFloat32(r); err != nil {
		return EulerAngle{}, err
	}
	return a, nil
}

type Facing int32

const (
	FacingDown Facing = iota
	FacingUp
	FacingNorth
	FacingSouth
	FacingWest
	FacingEast

	facingCount
)

func (f Facing) Write(w io.Writer) error { return writeOrdinal(w, int32(f)) }

func ReadFacing(r io.ByteReader) (Facing, error) {
	v, err := readOrdinal(r, int32(facingCount))
	return Facing(v), err
}

type Pose int32

const (
	PoseStanding Pose = iota
	PoseFallFlying
	PoseSleeping
	PoseSwimming
	PoseSpinAttack
	PoseSneaking
	PoseLongJumping
	PoseDying
	PoseCroaking
	PoseUsingTongue
	PoseRoaring
	PoseSniffing
	PoseEmerging
	PoseDigging

	poseCount
)

const DefaultPose = PoseStanding

func (p Pose) Write(w io.Writer) error { return writeOrdinal(w, int32(p)) }

func ReadPose(r io.ByteReader) (Pose, error) {
	v, err := readOrdinal(r, int32(poseCount))
	return Pose(v), err
}

// MainArm encodes as one raw byte instead of a VarInt ordinal. A protocol
// irregularity preserved bit-for-bit, not a convention.
type MainArm byte

const (
	MainArmLeft MainArm = iota
	MainArmRight

	mainArmCount
)

// DefaultMainArm matches the vanilla client default.
const DefaultMainArm = MainArmRight

func (m MainArm) Write(w io.Writer) error { return protocol.WriteByte(w, byte(m)) }

func ReadMainArm(r io.ByteReader) (MainArm, error) {
	b, err := protocol.ReadByte(r)
	if err != nil {
		return 0, err
	}
	if b >= byte(mainArmCount) {
		return 0, protocol.ErrInvalidEnumOrdinal
	}
	return MainArm(b), nil
}

type VillagerKind int32

const (
	VillagerKindDesert VillagerKind = iota
	VillagerKindJungle
	VillagerKindPlains
	VillagerKindSavanna
	VillagerKindSnow
	VillagerKindSwamp
	VillagerKindTaiga

	villagerKindCount
)

const DefaultVillagerKind = VillagerKindPlains

func (k VillagerKind) Write(w io.Writer) error { return writeOrdinal(w, int32(k)) }

func ReadVillagerKind(r io.ByteReader) (VillagerKind, error) {
	v, err := readOrdinal(r, int32(villagerKindCount))
	return VillagerKind(v), err
}

type VillagerProfession int32

const (
	ProfessionNone VillagerProfession = iota
	ProfessionArmorer
	ProfessionButcher
	ProfessionCartographer
	ProfessionCleric
	ProfessionFarmer
	ProfessionFisherman
	ProfessionFletcher
	ProfessionLeatherworker
	ProfessionLibrarian
	ProfessionMason
	ProfessionNitwit
	ProfessionShepherd
	ProfessionToolsmith
	ProfessionWeaponsmith

	professionCount
)

const DefaultProfession = ProfessionNone

func (p VillagerProfession) Write(w io.Writer) error { return writeOrdinal(w, int32(p)) }

func ReadVillagerProfession(r io.ByteReader) (VillagerProfession, error) {
	v, err := readOrdinal(r, int32(professionCount))
	return VillagerProfession(v), err
}

// VillagerData is the (kind, profession, level) triple shown on villager
// entities. Three VarInts on the wire.
type VillagerData struct {
	Kind       VillagerKind
	Profession VillagerProfession
	Level      int32
}

// DefaultVillagerData has level 1, not 0; a level-0 villager renders without
// a trade tier.
func DefaultVillagerData() VillagerData {
	return VillagerData{Kind: VillagerKindPlains, Profession: ProfessionNone, Level: 1}
}

func (d VillagerData) Write(w io.Writer) error {
	if err := d.Kind.Write(w); err != nil {
		return err
	}
	if err := d.Profession.Write(w); err != nil {
		return err
	}
	return protocol.WriteVarInt(w, d.Level)
}

func ReadVillagerData(r io.ByteReader) (VillagerData, error) {
	var d VillagerData
	var err error
	if d.Kind, err = ReadVillagerKind(r); err != nil {
		return VillagerData{}, err
	}
	if d.Profession, err = ReadVillagerProfession(r); err != nil {
		return VillagerData{}, err
	}
	if d.Level, err = protocol.ReadVarInt(r); err != nil {
		return VillagerData{}, err
	}
	return d, nil
}

type BoatKind int32

const (
	BoatKindOak BoatKind = iota
	BoatKindSpruce
	BoatKindBirch
	BoatKindJungle
	BoatKindAcacia
	BoatKindDarkOak

	boatKindCount
)

const DefaultBoatKind = BoatKindOak

func (k BoatKind) Write(w io.Writer) error { return writeOrdinal(w, int32(k)) }

func ReadBoatKind(r io.ByteReader) (BoatKind, error) {
	v, err := readOrdinal(r, int32(boatKindCount))
	return BoatKind(v), err
}

type CatKind int32

const (
	CatKindTabby CatKind = iota
	CatKindBlack
	CatKindRed
	CatKindSiamese
	CatKindBritishShorthair
	CatKindCalico
	CatKindPersian
	CatKindRagdoll
	CatKindWhite
	CatKindJellie
	CatKindAllBlack

	catKindCount
)

// DefaultCatKind is Black, not the zero ordinal; the declaration order is the
// protocol's, not ours.
const DefaultCatKind = CatKindBlack

func (k CatKind) Write(w io.Writer) error { return writeOrdinal(w, int32(k)) }

func ReadCatKind(r io.ByteReader) (CatKind, error) {
	v, err := readOrdinal(r, int32(catKindCount))
	return CatKind(v), err
}

type FrogKind int32

const (
	FrogKindTemperate FrogKind = iota
	FrogKindWarm
	FrogKindCold

	frogKindCount
)

const DefaultFrogKind = FrogKindTemperate

func (k FrogKind) Write(w io.Writer) error { return writeOrdinal(w, int32(k)) }

func ReadFrogKind(r io.ByteReader) (FrogKind, error) {
	v, err := readOrdinal(r, int32(frogKindCount))
	return FrogKind(v), err
}

type PaintingKind int32

const (
	PaintingKebab PaintingKind = iota
	PaintingAztec
	PaintingAlban
	PaintingAztec2
	PaintingBomb
	PaintingPlant
	PaintingWasteland
	PaintingPool
	PaintingCourbet
	PaintingSea
	PaintingSunset
	PaintingCreebet
	PaintingWanderer
	PaintingGraham
	PaintingMatch
	PaintingBust
	PaintingStage
	PaintingVoid
	PaintingSkullAndRoses
	PaintingWither
	PaintingFighters
	PaintingPointer
	PaintingPigscene
	PaintingBurningSkull
	PaintingSkeleton
	PaintingEarth
	PaintingWind
	PaintingWater
	PaintingFire
	PaintingDonkeyKong

	paintingCount
)

const DefaultPaintingKind = PaintingKebab

func (k PaintingKind) Write(w io.Writer) error { return writeOrdinal(w, int32(k)) }

func ReadPaintingKind(r io.ByteReader) (PaintingKind, error) {
	v, err := readOrdinal(r, int32(paintingCount))
	return PaintingKind(v), err
}

// Particle ids are protocol-assigned, not declaration ordinals; only the ones
// the server emits are declared here.
type Particle int32

const (
	ParticleEntityEffect Particle = 21
)

func (p Particle) Write(w io.Writer) error { return protocol.WriteVarInt(w, int32(p)) }

func ReadParticle(r io.ByteReader) (Particle, error) {
	v, err := protocol.ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	switch p := Particle(v); p {
	case ParticleEntityEffect:
		return p, nil
	default:
		return 0, protocol.ErrInvalidEnumOrdinal
	}
}
