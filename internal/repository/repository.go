// Package repository holds the data-access layer. Model CRUD goes through
// GORM; the list/detail views are raw SQL through the storage adapter so the
// same templates run on both backends.
package repository

import (
	"strings"
	"time"
)

// whereClause assembles "WHERE a AND b AND c" from accumulated conditions.
type whereClause struct {
	conds []string
	args  []interface{}
}

func (w *whereClause) add(cond string, args ...interface{}) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereClause) addRange(col string, from, to *time.Time) {
	if from != nil {
		w.add(col+" >= ?", *from)
	}
	if to != nil {
		w.add(col+" < ?", *to)
	}
}

func (w *whereClause) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
