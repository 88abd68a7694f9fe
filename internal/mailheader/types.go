package mailheader

import "strings"

// Finding statuses.
const (
	StatusMissing = "missing"
	StatusInvalid = "invalid"
	StatusDeleted = "deleted"
)

// Finding is one problem found in a message's header block.
type Finding struct {
	MsgIndex int    `json:"msgIndex"`
	Field    string `json:"field"`
	Status   string `json:"status"` // "missing", "invalid", "deleted"
	Detail   string `json:"detail,omitempty"`
}

// Field is a header field with its folded lines unwrapped into Values.
type Field struct {
	Name   string   // original field-name
	Values []string // folded lines
}

// Value joins the field's folded lines with single spaces.
func (f Field) Value() string {
	return strings.Join(f.Values, " ")
}
