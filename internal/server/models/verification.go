package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Verification is the moderation state of an ad or a user.
//
// It is stored as a nullable boolean: NULL is Pending, true is Approved and
// false is Rejected. The JSON form uses the same null/true/false encoding.
type Verification int

const (
	Pending Verification = iota
	Approved
	Rejected
)

func (v Verification) String() string {
	switch v {
	case Pending:
		return "pending"
	case Approved:
		return "approved"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("verification(%d)", int(v))
	}
}

// Decided reports whether the moderator has already made a call.
func (v Verification) Decided() bool {
	return v == Approved || v == Rejected
}

// Value implements driver.Valuer.
func (v Verification) Value() (driver.Value, error) {
	switch v {
	case Pending:
		return nil, nil
	case Approved:
		return true, nil
	case Rejected:
		return false, nil
	default:
		return nil, fmt.Errorf("unknown verification %d", int(v))
	}
}

// Scan implements sql.Scanner.
func (v *Verification) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*v = Pending
	case bool:
		*v = fromBool(s)
	case int64:
		*v = fromBool(s != 0)
	case string:
		return v.scanText([]byte(s))
	case []byte:
		return v.scanText(s)
	default:
		return fmt.Errorf("cannot scan %T into Verification", src)
	}
	return nil
}

func (v *Verification) scanText(b []byte) error {
	switch string(b) {
	case "t", "true", "1":
		*v = Approved
	case "f", "false", "0":
		*v = Rejected
	default:
		return fmt.Errorf("cannot scan %q into Verification", b)
	}
	return nil
}

func (v Verification) MarshalJSON() ([]byte, error) {
	switch v {
	case Approved:
		return []byte("true"), nil
	case Rejected:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (v *Verification) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*v = Pending
		return nil
	}
	var flag bool
	if err := json.Unmarshal(b, &flag); err != nil {
		return fmt.Errorf("verification: %w", err)
	}
	*v = fromBool(flag)
	return nil
}

func fromBool(b bool) Verification {
	if b {
		return Approved
	}
	return Rejected
}
