package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"

	"milkerfun/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeFloat64 converts doubles to IEEE bits so we dont lose precision on wasm.
func (w *binWriter) writeFloat64(v float64) {
	w.writeUint64(math.Float64bits(v))
}

// writeVarUint uses varints to keep lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

// EncodeSystemConfig serializes the singleton config into deterministic bytes for storage.
// Example payload: EncodeSystemConfig(&SystemConfig{Admin: sdk.Address("hive:alice"), BasePrice: 6_000_000_000})
func EncodeSystemConfig(cfg *SystemConfig) []byte {
	w := newWriter()
	w.writeAddress(cfg.Admin)
	w.writeInt64(cfg.StartTime)
	w.writeUint64(cfg.GlobalUnitCount)
	w.buf.WriteByte(byte(cfg.Policy))
	w.writeBool(cfg.ImportInflatesSupply)
	w.writeUint64(cfg.BasePrice)
	w.writeFloat64(cfg.PricePivot)
	w.writeFloat64(cfg.PriceSteepness)
	w.writeUint64(cfg.RewardBase)
	w.writeFloat64(cfg.RewardSensitivity)
	w.writeFloat64(cfg.TVLNormalization)
	w.writeUint64(cfg.MinRewardPerDay)
	w.writeFloat64(cfg.GreedMultiplier)
	w.writeFloat64(cfg.GreedDecayPivot)
	w.writeUint64(cfg.HalvingBaseRate)
	w.writeUint64(cfg.HalvingIntervalDays)
	w.writeUint64(cfg.HalvingMaxPeriods)
	return w.bytes()
}

// EncodeFarm packs a Farm into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeFarm(&Farm{Owner: sdk.Address("hive:alice"), Units: 3})
func EncodeFarm(f *Farm) []byte {
	w := newWriter()
	w.writeAddress(f.Owner)
	w.writeUint64(f.Units)
	w.writeInt64(f.LastUpdateTime)
	w.writeUint64(f.AccumulatedRewards)
	w.writeUint64(f.CachedRewardRate)
	w.writeInt64(f.LastWithdrawTime)
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

// readByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readBool restores bools stored via writeBool above.
func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// readUint64 decodes big endian integers for counts and amounts.
func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// readInt64 simply casts the unsigned read, matching the writer logic.
func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// readFloat64 flips IEEE bits back into a go float.
func (r *binReader) readFloat64() (float64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// readVarUint undoes the compact varint encoding for lengths.
func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readString reads the varint length then slices out the utf8 chunk.
func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// DecodeSystemConfig reverses EncodeSystemConfig keeping the exact field order.
// Example payload: DecodeSystemConfig(EncodeSystemConfig(&SystemConfig{BasePrice: 1}))
func DecodeSystemConfig(data []byte) (*SystemConfig, error) {
	r := newReader(data)
	cfg := &SystemConfig{}
	admin, err := r.readString()
	if err != nil {
		return nil, err
	}
	cfg.Admin = sdk.Address(admin)
	if cfg.StartTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if cfg.GlobalUnitCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	policyByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	cfg.Policy = PolicyKind(policyByte)
	if cfg.ImportInflatesSupply, err = r.readBool(); err != nil {
		return nil, err
	}
	if cfg.BasePrice, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.PricePivot, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.PriceSteepness, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.RewardBase, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.RewardSensitivity, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.TVLNormalization, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.MinRewardPerDay, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.GreedMultiplier, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.GreedDecayPivot, err = r.readFloat64(); err != nil {
		return nil, err
	}
	if cfg.HalvingBaseRate, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.HalvingIntervalDays, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.HalvingMaxPeriods, err = r.readUint64(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DecodeFarm lets queries and tests read back stored farms quickly.
// Example payload: DecodeFarm(EncodeFarm(&Farm{Units: 7}))
func DecodeFarm(data []byte) (*Farm, error) {
	r := newReader(data)
	f := &Farm{}
	owner, err := r.readString()
	if err != nil {
		return nil, err
	}
	f.Owner = sdk.Address(owner)
	if f.Units, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.LastUpdateTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	if f.AccumulatedRewards, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.CachedRewardRate, err = r.readUint64(); err != nil {
		return nil, err
	}
	if f.LastWithdrawTime, err = r.readInt64(); err != nil {
		return nil, err
	}
	return f, nil
}
