package entity

// DateFormat is the wire format of dates exchanged with the remote service.
const DateFormat = "2006-01-02"

// Record is one loosely-typed row as returned by the remote service.
type Record map[string]any

// Lookup resolves a dot-separated field path against the record.
func (rec Record) Lookup(path string) (Value, bool) {
	if rec == nil {
		return Value{}, false
	}
	return Value{Raw: map[string]any(rec)}.Path(path)
}

// Id returns the record's "id" field, or empty.
func (rec Record) Id() string {
	val, ok := rec.Lookup("id")
	if !ok {
		return ""
	}
	return val.String()
}

// Record kinds served by the remote service.
const (
	Clients   = "clients"
	Accounts  = "accounts"
	Movements = "movements"
)
