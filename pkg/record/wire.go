// Copyright (C) 2025 Assoc-X Project
//
// This file is part of assoc-go.
//
// assoc-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// assoc-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with assoc-go.  If not, see <https://www.gnu.org/licenses/>.

package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Wire format: byte fields as 0x-hex strings, timestamps as decimal strings.
// Decimal strings keep 40-bit values intact across JSON consumers that parse
// numbers as 64-bit floats.

type associationJSON struct {
	Initiator   string `json:"initiator"`
	Approver    string `json:"approver"`
	ValidAt     string `json:"validAt"`
	ValidUntil  string `json:"validUntil"`
	InterfaceID string `json:"interfaceId"`
	Data        string `json:"data"`
}

type signedAssociationJSON struct {
	associationJSON
	RevokedAt          string `json:"revokedAt"`
	InitiatorKeyType   string `json:"initiatorKeyType"`
	ApproverKeyType    string `json:"approverKeyType"`
	InitiatorSignature string `json:"initiatorSignature"`
	ApproverSignature  string `json:"approverSignature"`
}

func (a *Association) wire() associationJSON {
	return associationJSON{
		Initiator:   hexutil.Encode(a.Initiator),
		Approver:    hexutil.Encode(a.Approver),
		ValidAt:     strconv.FormatUint(a.ValidAt, 10),
		ValidUntil:  strconv.FormatUint(a.ValidUntil, 10),
		InterfaceID: hexutil.Encode(a.InterfaceID[:]),
		Data:        hexutil.Encode(a.Data),
	}
}

func (a *Association) fromWire(w associationJSON) error {
	var err error
	if a.Initiator, err = decodeHex(w.Initiator, "initiator"); err != nil {
		return err
	}
	if a.Approver, err = decodeHex(w.Approver, "approver"); err != nil {
		return err
	}
	if a.ValidAt, err = decodeTimestamp(w.ValidAt, "validAt"); err != nil {
		return err
	}
	if a.ValidUntil, err = decodeTimestamp(w.ValidUntil, "validUntil"); err != nil {
		return err
	}
	iface, err := decodeHex(w.InterfaceID, "interfaceId")
	if err != nil {
		return err
	}
	if len(iface) != 4 {
		return fmt.Errorf("interfaceId: expected 4 bytes, got %d", len(iface))
	}
	copy(a.InterfaceID[:], iface)
	if a.Data, err = decodeHex(w.Data, "data"); err != nil {
		return err
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a *Association) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Association) UnmarshalJSON(data []byte) error {
	var w associationJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode association record: %w", err)
	}
	return a.fromWire(w)
}

// MarshalJSON implements json.Marshaler.
func (s *SignedAssociation) MarshalJSON() ([]byte, error) {
	return json.Marshal(signedAssociationJSON{
		associationJSON:    s.Association.wire(),
		RevokedAt:          strconv.FormatUint(s.RevokedAt, 10),
		InitiatorKeyType:   fmt.Sprintf("0x%02x", byte(s.InitiatorKeyType)),
		ApproverKeyType:    fmt.Sprintf("0x%02x", byte(s.ApproverKeyType)),
		InitiatorSignature: hexutil.Encode(s.InitiatorSignature),
		ApproverSignature:  hexutil.Encode(s.ApproverSignature),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SignedAssociation) UnmarshalJSON(data []byte) error {
	var w signedAssociationJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode signed association record: %w", err)
	}
	if err := s.Association.fromWire(w.associationJSON); err != nil {
		return err
	}
	var err error
	if s.RevokedAt, err = decodeTimestamp(w.RevokedAt, "revokedAt"); err != nil {
		return err
	}
	if s.InitiatorKeyType, err = decodeKeyType(w.InitiatorKeyType, "initiatorKeyType"); err != nil {
		return err
	}
	if s.ApproverKeyType, err = decodeKeyType(w.ApproverKeyType, "approverKeyType"); err != nil {
		return err
	}
	if s.InitiatorSignature, err = decodeHex(w.InitiatorSignature, "initiatorSignature"); err != nil {
		return err
	}
	if s.ApproverSignature, err = decodeHex(w.ApproverSignature, "approverSignature"); err != nil {
		return err
	}
	return nil
}

func decodeHex(v, field string) ([]byte, error) {
	if v == "" || v == "0x" {
		return nil, nil
	}
	b, err := hexutil.Decode(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return b, nil
}

func decodeTimestamp(v, field string) (uint64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if n > MaxTimestamp {
		return 0, fmt.Errorf("%s %d: %w", field, n, ErrTimestampRange)
	}
	return n, nil
}

func decodeKeyType(v, field string) (KeyType, error) {
	raw := strings.TrimPrefix(v, "0x")
	if raw == "" {
		return KeyTypeDelegated, nil
	}
	n, err := strconv.ParseUint(raw, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return KeyType(n), nil
}
