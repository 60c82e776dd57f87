// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package random

import (
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// Encode renders the seed as a printable token that DecodeSeed restores
// bit for bit. Tokens are stable across releases and platforms, so they
// can name reproducible runs in configs, URLs and bug reports.
func (s Seed) Encode() string {
	plain := strconv.FormatUint(uint64(s.state), 10) + "," + strconv.FormatUint(uint64(s.inc), 10)
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// DecodeSeed reverses Encode. It accepts exactly the tokens Encode
// produces: standard base64 wrapping a decimal "state,increment" pair with
// both numbers fitting in 32 bits.
func DecodeSeed(token string) (Seed, error) {
	plain, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Seed{}, xerrors.Errorf("random: decode seed token: %w", err)
	}
	state, inc, ok := strings.Cut(string(plain), ",")
	if !ok {
		return Seed{}, xerrors.Errorf("random: decode seed token: missing separator in %q", plain)
	}
	st, err := strconv.ParseUint(state, 10, 32)
	if err != nil {
		return Seed{}, xerrors.Errorf("random: decode seed state: %w", err)
	}
	in, err := strconv.ParseUint(inc, 10, 32)
	if err != nil {
		return Seed{}, xerrors.Errorf("random: decode seed increment: %w", err)
	}
	return Seed{state: uint32(st), inc: uint32(in)}, nil
}

// MarshalText implements encoding.TextMarshaler using the Encode token, so
// a Seed can sit directly in a JSON or text config field.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.Encode()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	decoded, err := DecodeSeed(string(text))
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
