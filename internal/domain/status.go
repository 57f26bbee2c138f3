package domain

import "strconv"

// Status is the outcome code of a single payment. Numeric values are part of
// the external contract and are stored as is.
type Status int

const (
	StatusUnset     Status = 0
	StatusOK        Status = 1
	StatusFullSaved Status = 2
	StatusDuplicate Status = 97
	StatusPartialOK Status = 98
	StatusNotOK     Status = 99
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFullSaved:
		return "FULL_SAVED"
	case StatusDuplicate:
		return "DUPLICATE"
	case StatusPartialOK:
		return "PARTIAL_OK"
	case StatusNotOK:
		return "NOT_OK"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusFullSaved, StatusDuplicate, StatusPartialOK, StatusNotOK:
		return true
	default:
		return false
	}
}

// Final reports whether s may be persisted. OK is an intermediate state that
// the second pass over a batch always replaces.
func (s Status) Final() bool {
	return s.Valid() && s != StatusOK
}

type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusProcessing FileStatus = "processing"
	FileStatusDone       FileStatus = "done"
	FileStatusEmpty      FileStatus = "empty"
	FileStatusError      FileStatus = "error"
)
