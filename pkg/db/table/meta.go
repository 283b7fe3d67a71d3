// generic DAO built from struct metadata.
package table

import (
	"fmt"
	"reflect"
	"strings"

	kdb "github.com/opst/extlite/pkg/db"
)

// column of a table, and the struct field mapped to it.
type column struct {
	name  string
	field int
}

// metadata of a Model type.
//
// # mapping rule
//
// exported fields are mapped into columns named
//
//  1. as the tag `sql:"column_name"`
//  2. or, snake_case of the field name ("CreatedAt" -> "created_at").
//
// fields tagged `sql:"-"` are ignored.
//
// When a result set is scanned, its columns are mapped into fields
//
//  1. with tag `sql:"column_name"`
//  2. or, named as same as the column name
//  3. or, named in CamelCase of the column name.
type meta struct {
	typ     reflect.Type
	table   string
	key     column
	columns []column

	byTag  map[string]int
	byName map[string]int
}

func newMeta[T kdb.Model]() (*meta, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model should be a struct, but %T", zero)
	}

	m := &meta{
		typ:    typ,
		table:  zero.TableName(),
		byTag:  map[string]int{},
		byName: map[string]int{},
	}
	if m.table == "" {
		return nil, fmt.Errorf("%s: table name is empty", typ)
	}

	keyName := zero.KeyColumn()
	keyFound := false
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := snake(f.Name)
		if tag, ok := f.Tag.Lookup("sql"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
				m.byTag[tag] = i
			}
		}
		m.byName[f.Name] = i

		c := column{name: name, field: i}
		m.columns = append(m.columns, c)
		if name == keyName {
			m.key = c
			keyFound = true
		}
	}

	if !keyFound {
		return nil, fmt.Errorf(`%s: key column "%s" is not mapped to any field`, typ, keyName)
	}
	return m, nil
}

// find the field for a column in a result set.
func (m *meta) fieldFor(col string) (int, bool) {
	if i, ok := m.byTag[col]; ok {
		return i, true
	}
	if i, ok := m.byName[col]; ok {
		return i, true
	}
	if i, ok := m.byName[camel(col)]; ok {
		return i, true
	}
	return 0, false
}

// columns to be written.
//
// When withKey is false, the key column is excluded.
func (m *meta) writable(withKey bool) []column {
	ret := make([]column, 0, len(m.columns))
	for _, c := range m.columns {
		if !withKey && c.name == m.key.name {
			continue
		}
		ret = append(ret, c)
	}
	return ret
}

func (m *meta) values(record reflect.Value, cols []column) []any {
	ret := make([]any, len(cols))
	for nth, c := range cols {
		ret[nth] = record.Field(c.field).Interface()
	}
	return ret
}

func camel(s string) string {
	b := &strings.Builder{}
	for _, ss := range strings.Split(s, "_") {
		if len(ss) == 0 {
			b.WriteString("_")
			continue
		}
		b.WriteString(strings.ToUpper(ss[0:1]))
		b.WriteString(ss[1:])
	}
	return b.String()
}

// "CreatedAt" -> "created_at", "HTTPStatus" -> "http_status", "Id" -> "id"
func snake(s string) string {
	runes := []rune(s)
	b := &strings.Builder{}
	for i, r := range runes {
		upper := 'A' <= r && r <= 'Z'
		if upper && i != 0 {
			prevLower := !('A' <= runes[i-1] && runes[i-1] <= 'Z') && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && 'a' <= runes[i+1] && runes[i+1] <= 'z'
			if prevLower || (nextLower && runes[i-1] != '_') {
				b.WriteRune('_')
			}
		}
		if upper {
			r = r - 'A' + 'a'
		}
		b.WriteRune(r)
	}
	return b.String()
}
