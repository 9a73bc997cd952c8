package drug

type Status string

const (
	StatusAvailable  Status = "available"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

// DeriveStatus is the only source of a drug's status.
func DeriveStatus(quantity, minimumStock int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= minimumStock:
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

func (s Status) NeedsRestock() bool {
	return s == StatusLowStock || s == StatusOutOfStock
}

type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
)

func NewOperation(s string) (Operation, error) {
	op := Operation(s)
	switch op {
	case OperationAdd, OperationSubtract:
		return op, nil
	default:
		return "", ErrInvalidOperation
	}
}
