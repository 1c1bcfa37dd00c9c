package sqlfrag

import (
	"fmt"
	"strconv"
)

/*
Appends a text representation. Sometimes allows better efficiency than
`fmt.Stringer`. Implemented by all fragment types in this package.

The method is allowed to panic with `Err` when the receiver describes an
invalid fragment, such as an empty column list. Use `CatchString` to convert
such panics to errors.
*/
type Appender interface {
	Append([]byte) []byte
}

/*
Describes a single column: its name, optionally paired with its SQL type
text, such as "INTEGER" or "TEXT". Neither component is quoted, escaped, or
otherwise validated; both are interpolated verbatim.
*/
type Field struct {
	Name string
	Type string
}

/*
Represents a comma-separated list of column definitions suitable for a
`create table` statement:

	FieldDefs{{`id`, `INTEGER`}, {`name`, `TEXT`}} -> `id INTEGER,name TEXT`

Must be non-empty; appending or stringifying an empty list panics with
`ErrInvalidInput`.
*/
type FieldDefs []Field

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self FieldDefs) Append(text []byte) []byte {
	validateNonEmpty(`appending column definitions`, len(self))
	return appendJoined(text, len(self), func(text []byte, ix int) []byte {
		text = append(text, self[ix].Name...)
		text = append(text, ` `...)
		return append(text, self[ix].Type...)
	})
}

// Implement the `fmt.Stringer` interface.
func (self FieldDefs) String() string { return appenderToStr(self) }

/*
Represents a comma-separated list of column names taken from field
descriptors, ignoring their type text:

	FieldNames{{`id`, `INTEGER`}, {`name`, `TEXT`}} -> `id,name`

Must be non-empty; appending or stringifying an empty list panics with
`ErrInvalidInput`.
*/
type FieldNames []Field

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self FieldNames) Append(text []byte) []byte {
	validateNonEmpty(`appending column names`, len(self))
	return appendJoined(text, len(self), func(text []byte, ix int) []byte {
		return append(text, self[ix].Name...)
	})
}

// Implement the `fmt.Stringer` interface.
func (self FieldNames) String() string { return appenderToStr(self) }

/*
Represents a comma-separated list of bare column names:

	Names{`id`, `name`, `age`} -> `id,name,age`

Convenience variant of `FieldNames` for callers that carry names without
type text. Must be non-empty; appending or stringifying an empty list panics
with `ErrInvalidInput`.
*/
type Names []string

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Names) Append(text []byte) []byte {
	validateNonEmpty(`appending column names`, len(self))
	return appendJoined(text, len(self), func(text []byte, ix int) []byte {
		return append(text, self[ix]...)
	})
}

// Implement the `fmt.Stringer` interface.
func (self Names) String() string { return appenderToStr(self) }

/*
Represents a comma-separated list of positional placeholders. The value is
the placeholder count:

	Placeholders(3) -> `?,?,?`

Must be positive; appending or stringifying a non-positive count panics with
`ErrInvalidInput`.
*/
type Placeholders int

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self Placeholders) Append(text []byte) []byte {
	validateCount(`appending placeholders`, int(self))
	return appendJoined(text, int(self), func(text []byte, _ int) []byte {
		return append(text, placeholderMarker)
	})
}

// Implement the `fmt.Stringer` interface.
func (self Placeholders) String() string { return appenderToStr(self) }

/*
Represents a comma-separated list of numbered placeholders. The value is the
placeholder count. Numbering always starts at 1:

	OrdPlaceholders(3) -> `?1,?2,?3`

Must be positive; appending or stringifying a non-positive count panics with
`ErrInvalidInput`.
*/
type OrdPlaceholders int

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self OrdPlaceholders) Append(text []byte) []byte {
	validateCount(`appending numbered placeholders`, int(self))
	return appendJoined(text, int(self), func(text []byte, ix int) []byte {
		return OrdinalParam(ix + 1).Append(text)
	})
}

// Implement the `fmt.Stringer` interface.
func (self OrdPlaceholders) String() string { return appenderToStr(self) }

/*
Represents a single numbered placeholder in the `?N` form understood by
SQLite-style drivers. Always 1-based: `OrdinalParam(1)` renders as `?1`.
Used internally by `OrdPlaceholders`, `FieldAssigns`, `NameAssigns`;
exported because it's handy for composing statements around them.
*/
type OrdinalParam int

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self OrdinalParam) Append(text []byte) []byte {
	text = append(text, placeholderMarker)
	return strconv.AppendInt(text, int64(self), 10)
}

// Implement the `fmt.Stringer` interface.
func (self OrdinalParam) String() string { return appenderToStr(self) }

// Converts to the corresponding 0-based index. `OrdinalParam(1).Index() == 0`.
func (self OrdinalParam) Index() int { return int(self) - 1 }

// Inverse of `OrdinalParam.Index`: converts a 0-based index to a 1-based
// ordinal. `OrdinalParam(0).FromIndex() == OrdinalParam(1)`.
func (self OrdinalParam) FromIndex() OrdinalParam { return self + 1 }

/*
Represents the column list of an `update ... set` clause, with numbered
placeholders, taken from field descriptors. Iteration starts at `.Begin`
(0-based, inclusive) and runs through the end of `.Fields`. Each placeholder
number is the field's position in the ORIGINAL sequence plus 1, NOT its
position relative to `.Begin`:

	FieldAssigns{
		Fields: []Field{{`id`, `INTEGER`}, {`name`, `TEXT`}, {`age`, `INTEGER`}},
		Begin:  1,
	} -> `name = ?2,age = ?3`

This allows a single flat argument list to line up across the whole
statement: the skipped leading fields, typically primary key columns bound
in the `where` clause, keep occupying the placeholder slots `1..Begin`.

`.Fields` must be non-empty and `.Begin` must be within `[0, len(.Fields))`;
otherwise appending or stringifying panics with `ErrInvalidInput` or
`ErrIndexOutOfBounds`.
*/
type FieldAssigns struct {
	Fields []Field
	Begin  int
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self FieldAssigns) Append(text []byte) []byte {
	validateBegin(`appending column assignments`, self.Begin, len(self.Fields))
	return appendJoinedFrom(text, self.Begin, len(self.Fields), func(text []byte, ix int) []byte {
		return appendAssign(text, self.Fields[ix].Name, ix)
	})
}

// Implement the `fmt.Stringer` interface.
func (self FieldAssigns) String() string { return appenderToStr(self) }

/*
Represents the column list of an `update ... set` clause, with numbered
placeholders, taken from bare column names. Identical contract to
`FieldAssigns`:

	NameAssigns{Names: []string{`a`, `b`}} -> `a = ?1,b = ?2`
*/
type NameAssigns struct {
	Names []string
	Begin int
}

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding.
func (self NameAssigns) Append(text []byte) []byte {
	validateBegin(`appending column assignments`, self.Begin, len(self.Names))
	return appendJoinedFrom(text, self.Begin, len(self.Names), func(text []byte, ix int) []byte {
		return appendAssign(text, self.Names[ix], ix)
	})
}

// Implement the `fmt.Stringer` interface.
func (self NameAssigns) String() string { return appenderToStr(self) }

/*
Tiny shortcut for encoding an `Appender` implementation to a string by using
its `.Append` method, without paying for a string-to-byte conversion.
Panics are propagated; see `CatchString`.
*/
func AppenderString(val Appender) string {
	if val != nil {
		return bytesToMutableString(val.Append(nil))
	}
	return ``
}

/*
Same as `AppenderString`, but catches fragment-encoding panics and converts
them to errors. For apps that insist on errors-as-values:

	frag, err := sqlfrag.CatchString(sqlfrag.Names(input))
	if err != nil {}
*/
func CatchString(val Appender) (_ string, err error) {
	defer rec(&err)
	return AppenderString(val), nil
}

const placeholderMarker = '?'

func appendAssign(text []byte, name string, ix int) []byte {
	text = append(text, name...)
	text = append(text, ` = `...)
	return OrdinalParam(ix).FromIndex().Append(text)
}

func validateNonEmpty(while string, size int) {
	if size <= 0 {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: while,
			Cause: fmt.Errorf(`expected at least one element, got %v`, size),
		})
	}
}

func validateCount(while string, count int) {
	if count <= 0 {
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: while,
			Cause: fmt.Errorf(`expected a positive count, got %v`, count),
		})
	}
}

func validateBegin(while string, begin int, size int) {
	validateNonEmpty(while, size)
	if begin < 0 || begin >= size {
		panic(Err{
			Code:  ErrCodeIndexOutOfBounds,
			While: while,
			Cause: fmt.Errorf(`begin index %v out of range [0,%v)`, begin, size),
		})
	}
}
