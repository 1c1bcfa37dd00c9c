package sqlfrag

import (
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type UserRow struct {
	Id   int64  `db:"id"   sqltype:"INTEGER PRIMARY KEY"`
	Name string `db:"name" sqltype:"TEXT"`
	Age  int64  `db:"age"  sqltype:"INTEGER"`
}

type Embed struct {
	EmbedId   int64  `db:"embed_id" sqltype:"INTEGER"`
	EmbedName string `db:"embed_name"`
}

type Outer struct {
	Embed
	Id        int64  `db:"outer_id" sqltype:"INTEGER"`
	Untagged0 string ``
	Untagged1 string `db:"-"`
	OnlyJson  string `json:"onlyJson"`
}

var testFields = []Field{
	{`id`, `INTEGER`},
	{`name`, `TEXT`},
	{`age`, `INTEGER`},
}

type Fragment interface {
	fmt.Stringer
	Appender
}

/*
Verifies the full encoding contract of a fragment: `.String` and `.Append`
agree, appending to a non-empty buffer preserves the prefix, and repeated
calls produce byte-identical output.
*/
func testFrag(t testing.TB, exp string, val Fragment) {
	t.Helper()
	eq(t, exp, val.String())
	eq(t, exp, string(val.Append(nil)))
	eq(t, `prefix `+exp, string(val.Append([]byte(`prefix `))))
	eq(t, val.String(), val.String())
}

func testFragPanics(t testing.TB, msg string, val Fragment) {
	t.Helper()
	panics(t, msg, func() { val.Append(nil) })
	panics(t, msg, func() { _ = val.String() })
}

func eq(t testing.TB, exp, act interface{}) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val interface{}) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val interface{}) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *interface{}) { *ptr = recover() }
