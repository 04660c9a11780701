package dataset

// Field is a named value, used to build records in key order.
type Field struct {
	Name  string
	Value Value
}

// F is shorthand for Field{name, v}.
func F(name string, v Value) Field { return Field{Name: name, Value: v} }

// Record maps field names to values and remembers the order in which keys
// were first set. Records are shared by reference between a Dataset and the
// views derived from it.
type Record struct {
	keys []string
	vals map[string]Value
}

// NewRecord builds a record from fields in order. A repeated name overwrites
// the earlier value but keeps its original position.
func NewRecord(fields ...Field) Record {
	r := Record{vals: make(map[string]Value, len(fields))}
	for _, f := range fields {
		r.Set(f.Name, f.Value)
	}
	return r
}

// Set stores a value under name.
func (r *Record) Set(name string, v Value) {
	if r.vals == nil {
		r.vals = make(map[string]Value)
	}
	if _, ok := r.vals[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.vals[name] = v
}

// Get returns the value for name, or an Absent value if the field is missing.
func (r Record) Get(name string) Value {
	return r.vals[name]
}

// Has reports whether the record carries the field at all (null included).
func (r Record) Has(name string) bool {
	_, ok := r.vals[name]
	return ok
}

// Keys returns field names in insertion order. Callers must not modify it.
func (r Record) Keys() []string { return r.keys }

// Len is the number of fields.
func (r Record) Len() int { return len(r.keys) }

// Dataset is an ordered, load-once sequence of records.
type Dataset []Record
