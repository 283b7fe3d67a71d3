package postgres

import (
	"fmt"

	"github.com/jackc/pgtype"
)

// built-in types of PostgreSQL
var connInfo = pgtype.NewConnInfo()

// name of a column type, for messages.
func pgOID2String(oid uint32) string {
	if dt, ok := connInfo.DataTypeForOID(oid); ok {
		return dt.Name
	}
	return fmt.Sprintf("undefined oid(%d)", oid)
}
