package admission

import "fmt"

// Result is the verdict of the admission script. Values are the script's
// integer return codes.
type Result int

const (
	Admitted      Result = 0
	OutOfStock    Result = 1
	Duplicate     Result = 2
	NotStarted    Result = 3
	Ended         Result = 4
	NotOnSale     Result = 5
	unknownResult Result = -1
)

func FromCode(code int64) (Result, error) {
	r := Result(code)
	switch r {
	case Admitted, OutOfStock, Duplicate, NotStarted, Ended, NotOnSale:
		return r, nil
	}
	return unknownResult, fmt.Errorf("unknown admission code %d", code)
}

func (r Result) Admitted() bool {
	return r == Admitted
}

func (r Result) String() string {
	switch r {
	case Admitted:
		return "admitted"
	case OutOfStock:
		return "out_of_stock"
	case Duplicate:
		return "duplicate"
	case NotStarted:
		return "not_started"
	case Ended:
		return "ended"
	case NotOnSale:
		return "not_on_sale"
	default:
		return "unknown"
	}
}
