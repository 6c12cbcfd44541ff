package xmlbuilder

import "strconv"

// Attr is a single element attribute. The zero Value renders as
// name="" - the key is kept even when the value is empty or absent.
type Attr struct {
	Name  string
	Value string
}

func (a Attr) Bool(v bool) Attr     { a.Value = strconv.FormatBool(v); return a }
func (a Attr) Int(v int) Attr       { a.Value = strconv.FormatInt(int64(v), 10); return a }
func (a Attr) Int64(v int64) Attr   { a.Value = strconv.FormatInt(v, 10); return a }
func (a Attr) Uint64(v uint64) Attr { a.Value = strconv.FormatUint(v, 10); return a }
func (a Attr) Float32(v float32) Attr {
	a.Value = strconv.FormatFloat(float64(v), 'g', -1, 32)
	return a
}
func (a Attr) Float64(v float64) Attr { a.Value = strconv.FormatFloat(v, 'g', -1, 64); return a }

// Any sets the value from an arbitrary scalar using its canonical string
// form. Any(nil) leaves the value empty, so the attribute still renders
// as name="".
func (a Attr) Any(v any) Attr { a.Value = scalarString(v); return a }
