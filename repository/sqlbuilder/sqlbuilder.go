// Package sqlbuilder holds the squirrel statement builder shared by the
// MySQL repositories.
package sqlbuilder

import (
	"errors"

	"github.com/Masterminds/squirrel"
)

var (
	ErrBuildQuery = errors.New("build query")
	ErrExecQuery  = errors.New("execute query")
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
