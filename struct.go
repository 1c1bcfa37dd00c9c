package sqlfrag

import (
	"fmt"
	"reflect"

	"github.com/mitranim/refut"
)

const (
	TagNameDb      = `db`
	TagNameSqlType = `sqltype`
)

/*
Scans a struct, converting fields tagged with `db` into a sequence of field
descriptors usable with `FieldDefs`, `FieldNames`, `FieldAssigns`. The column
name is taken from the `db` tag, following the JSON convention of eliding
anything after a comma and treating "-" as a non-name. The SQL type text is
taken verbatim from the `sqltype` tag, which may be absent:

	type UserRow struct {
		Id   int64  `db:"id"   sqltype:"INTEGER PRIMARY KEY"`
		Name string `db:"name" sqltype:"TEXT"`
	}

	StructFields(UserRow{}) -> []Field{{`id`, `INTEGER PRIMARY KEY`}, {`name`, `TEXT`}}

The input must be a struct or a struct pointer; a nil pointer is fine and is
used only as a type carrier. Panics with `ErrInvalidInput` on other inputs.
Treats embedded structs as part of the enclosing struct. Tagged fields of
struct types are treated as single columns, not expanded.
*/
func StructFields(input interface{}) []Field {
	return typeFields(reflect.TypeOf(input))
}

/*
Scans a struct, converting fields tagged with `db` into a sequence of bare
column names usable with `Names`, `NameAssigns`. Same conventions as
`StructFields`.
*/
func StructNames(input interface{}) []string {
	fields := StructFields(input)
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		names = append(names, field.Name)
	}
	return names
}

func typeFields(rtype reflect.Type) []Field {
	if rtype != nil {
		rtype = refut.RtypeDeref(rtype)
	}
	if rtype == nil || rtype.Kind() != reflect.Struct {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `deriving field descriptors from struct`,
			Cause: fmt.Errorf(`expected struct, got %q`, rtype),
		})
	}

	var fields []Field
	try(refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		name := refut.TagIdent(sfield.Tag.Get(TagNameDb))
		if name == "" {
			return nil
		}
		fields = append(fields, Field{Name: name, Type: sfield.Tag.Get(TagNameSqlType)})
		return nil
	}))
	return fields
}
