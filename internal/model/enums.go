package model

import "fmt"

// WorkModel describes where the work happens.
type WorkModel int

const (
	WorkModelOnSite WorkModel = iota + 1
	WorkModelHybrid
	WorkModelRemote
)

var workModelNames = map[WorkModel]string{
	WorkModelOnSite: "On-Site",
	WorkModelHybrid: "Hybrid",
	WorkModelRemote: "Remote",
}

func (w WorkModel) String() string {
	if name, ok := workModelNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WorkModel(%d)", int(w))
}

// Valid reports whether w is one of the defined work models.
func (w WorkModel) Valid() bool {
	_, ok := workModelNames[w]
	return ok
}

// ContractType describes the employment contract a preference targets.
type ContractType int

const (
	ContractPermanent ContractType = iota + 1
	ContractFixedTerm
	ContractUnspecifiedDuration
	ContractPartTime
	ContractTemporary
	ContractShortTerm
	ContractFreelance
)

var contractNames = map[ContractType]string{
	ContractPermanent:           "Permanent",
	ContractFixedTerm:           "Fixed Term",
	ContractUnspecifiedDuration: "Unspecified Duration",
	ContractPartTime:            "Part Time",
	ContractTemporary:           "Temporary",
	ContractShortTerm:           "Short Term",
	ContractFreelance:           "Freelance",
}

func (c ContractType) String() string {
	if name, ok := contractNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ContractType(%d)", int(c))
}

// Valid reports whether c is one of the defined contract types.
func (c ContractType) Valid() bool {
	_, ok := contractNames[c]
	return ok
}

// TriState is an explicit three-valued answer for profile questions where
// "the user never said" is distinct from "no".
type TriState string

const (
	TriStateUnspecified TriState = "unspecified"
	TriStateYes         TriState = "yes"
	TriStateNo          TriState = "no"
)

// Valid reports whether t is one of the three defined values. The empty
// string is accepted and read as unspecified.
func (t TriState) Valid() bool {
	switch t {
	case TriStateUnspecified, TriStateYes, TriStateNo, "":
		return true
	}
	return false
}

// Normalize maps the empty string to TriStateUnspecified.
func (t TriState) Normalize() TriState {
	if t == "" {
		return TriStateUnspecified
	}
	return t
}
