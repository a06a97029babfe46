package model

import (
	"fmt"
	"strings"
)

// ProtocolMode selects how node roles are derived for display.
type ProtocolMode int

const (
	ProofOfWork ProtocolMode = iota
	ProofOfStake
)

// ParseProtocolMode accepts "pow"/"pos" and their long forms, case-insensitively.
func ParseProtocolMode(s string) (ProtocolMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pow", "proof-of-work", "proofofwork":
		return ProofOfWork, nil
	case "pos", "proof-of-stake", "proofofstake":
		return ProofOfStake, nil
	default:
		return 0, fmt.Errorf("unknown protocol mode %q", s)
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (m *ProtocolMode) UnmarshalFlag(value string) error {
	parsed, err := ParseProtocolMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m ProtocolMode) String() string {
	switch m {
	case ProofOfWork:
		return "pow"
	case ProofOfStake:
		return "pos"
	default:
		return fmt.Sprintf("ProtocolMode(%d)", int(m))
	}
}

// Role is the consensus role a node displays at a point in time.
type Role string

const (
	RoleNone      Role = ""
	RoleMiner     Role = "M"
	RoleProposer  Role = "P"
	RoleCommittee Role = "C"
)
