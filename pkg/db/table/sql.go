package table

import (
	"strings"
)

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func columnList(cols []column) string {
	names := make([]string, len(cols))
	for nth, c := range cols {
		names[nth] = quote(c.name)
	}
	return strings.Join(names, ", ")
}

// statements for a Model, built once per DAO.
type statements struct {
	selectAll string
	selectOne string
	update    string
	delete    string

	insertWithKey    string
	insertWithoutKey string
}

func buildStatements(m *meta, placeholder func(int) string) statements {
	table := quote(m.table)
	key := quote(m.key.name)
	all := columnList(m.columns)

	insert := func(cols []column) string {
		ph := make([]string, len(cols))
		for nth := range cols {
			ph[nth] = placeholder(nth + 1)
		}
		return "insert into " + table + " (" + columnList(cols) + ")" +
			" values (" + strings.Join(ph, ", ") + ")" +
			" returning " + all
	}

	nonKey := m.writable(false)
	sets := make([]string, len(nonKey))
	for nth, c := range nonKey {
		sets[nth] = quote(c.name) + " = " + placeholder(nth+1)
	}

	return statements{
		selectAll: "select " + all + " from " + table + " order by " + key,
		selectOne: "select " + all + " from " + table + " where " + key + " = " + placeholder(1),
		update: "update " + table + " set " + strings.Join(sets, ", ") +
			" where " + key + " = " + placeholder(len(nonKey)+1),
		delete:           "delete from " + table + " where " + key + " = " + placeholder(1),
		insertWithKey:    insert(m.writable(true)),
		insertWithoutKey: insert(nonKey),
	}
}
