package diag

// Code is a stable identifier for a kind of diagnostic.
// Codes are organized by category:
//   - E1xxx: Parse errors
type Code string

const (
	E1001 Code = "E1001" // Unexpected token
	E1002 Code = "E1002" // Unexpected end of file
	E1003 Code = "E1003" // Expected construct
	E1004 Code = "E1004" // Missing top level module
	E1005 Code = "E1005" // Qualified name not allowed
	E1006 Code = "E1006" // Expected name in function declaration
	E1007 Code = "E1007" // Missing type ascription
	E1008 Code = "E1008" // Empty data declaration with where
	E1009 Code = "E1009" // Maximum nesting depth exceeded
	E1010 Code = "E1010" // Constructor outside data declaration
)

var codeDescriptions = map[Code]string{
	E1001: "unexpected token",
	E1002: "unexpected end of file",
	E1003: "expected construct",
	E1004: "missing top level module",
	E1005: "qualified name not allowed",
	E1006: "expected name in function declaration",
	E1007: "missing type ascription",
	E1008: "empty data declaration with where",
	E1009: "maximum nesting depth exceeded",
	E1010: "constructor outside data declaration",
}

// Description returns a short description of the code.
func (c Code) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// Category returns the category name for the code.
func (c Code) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	default:
		return "unknown"
	}
}
