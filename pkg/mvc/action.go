package mvc

import "strings"

// Action is a conventional lifecycle operation of a controller.
type Action string

const (
	Index  Action = "index"
	Add    Action = "add"
	Create Action = "create"
	Edit   Action = "edit"
	Save   Action = "save"
	Delete Action = "delete"
	Detail Action = "detail"
)

// all actions, in the order of lifecycle.
func Actions() []Action {
	return []Action{Index, Add, Create, Edit, Save, Delete, Detail}
}

// ParseAction converts a path segment into Action.
//
// Matching is exact and case sensitive: "Index" is not Index.
func ParseAction(segment string) (Action, bool) {
	switch a := Action(segment); a {
	case Index, Add, Create, Edit, Save, Delete, Detail:
		return a, true
	}
	return "", false
}

func (a Action) String() string {
	return string(a)
}

// LastSegment returns the last non-empty segment of a slash-separated path.
//
//	"/app/notes/edit"  -> "edit"
//	"/app/notes/edit/" -> "edit"
//	"/"                -> ""
func LastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); 0 <= i {
		return p[i+1:]
	}
	return p
}
