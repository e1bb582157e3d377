package fragql

// Operation is the kind of statement a Builder is assembling.
type Operation string

const (
	OpNone   Operation = ""
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)
