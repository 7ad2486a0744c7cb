package workspace

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("node not found")
	ErrNotFile        = errors.New("node is not a file")
	ErrNotFolder      = errors.New("node is not a folder")
	ErrNotHTML        = errors.New("file is not an HTML document")
	ErrNotOpen        = errors.New("file is not open")
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidMove    = errors.New("invalid move")
	ErrDuplicateName  = errors.New("duplicate name")
	ErrInvalidSetting = errors.New("invalid setting")
)

// NameError carries a user-facing validation message. It matches
// ErrInvalidName under errors.Is.
type NameError struct {
	Msg string
}

func (e *NameError) Error() string { return e.Msg }

func (e *NameError) Is(target error) bool { return target == ErrInvalidName }

// CyclicMoveError reports an attempt to move a folder into itself or one of
// its descendants.
type CyclicMoveError struct {
	NodeID   string
	TargetID string
}

func (e *CyclicMoveError) Error() string {
	return fmt.Sprintf("cannot move %s into its own subtree (target %s)", e.NodeID, e.TargetID)
}

func (e *CyclicMoveError) Is(target error) bool { return target == ErrInvalidMove }

// DuplicateNameError reports a sibling that already carries Name.
type DuplicateNameError struct {
	Name     string
	ParentID string
}

func (e *DuplicateNameError) Error() string {
	if e.ParentID == "" {
		return fmt.Sprintf("%q already exists at the workspace root", e.Name)
	}
	return fmt.Sprintf("%q already exists in folder %s", e.Name, e.ParentID)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }
