package taxlot

import (
	"encoding/json"
	"fmt"
)

// Method defines the method for selecting which lots a disposition consumes.
type Method int

const (
	// FIFO (First-In, First-Out) consumes the oldest lots first.
	FIFO Method = iota
	// LIFO (Last-In, First-Out) consumes the newest lots first.
	LIFO
	// HIFO (Highest-In, First-Out) consumes the lots with the highest unit cost first.
	HIFO
	// SpecificID consumes exactly the lots the holder designated, in the order given.
	SpecificID
)

func (m Method) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	case SpecificID:
		return "specific"
	default:
		return "unknown"
	}
}

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	case "specific":
		return SpecificID, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Method.
func (m Method) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Method.
func (m *Method) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
