/*
SQL Fragment builders: tiny utilities for generating the repetitive portions
of SQL statements from field descriptors: column definition lists, column
name lists, placeholder lists, and `set` clauses for updates. Oriented
towards the `?` / `?N` placeholder dialect used by SQLite-style drivers.

This package generates FRAGMENTS, not statements. The caller is expected to
embed the resulting text into a full statement and hand it to a database
driver, along with a flat argument list whose slots line up with the
generated placeholder numbers.

Key Features

• Pure text generation. No statement execution, no connections, no parsing.

• Every fragment type implements `Appender` and `fmt.Stringer`, allowing
both zero-fuss `.String()` calls and allocation-conscious appending to an
existing buffer.

• Ordinal numbering is always 1-based and always reflects a field's
position in the ORIGINAL sequence, which keeps a single flat argument list
aligned across `where` and `set` clauses; see `FieldAssigns`.

• Field descriptors may be written out literally or derived from struct
types tagged with `db` and `sqltype`; see `StructFields`.

Malformed inputs, such as empty field lists or out-of-range begin indexes,
cause panics with a structured `Err`. Use `CatchString` for errors-as-values.
*/
package sqlfrag
