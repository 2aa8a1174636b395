package ecoscore

import "fmt"

// InvalidAmountError reports a row whose amount field is not numeric after
// stripping a leading currency symbol and thousands separators. Raw carries
// the offending value exactly as uploaded.
type InvalidAmountError struct {
	Raw string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q", e.Raw)
}

// EmptyBatchError reports an attempt to aggregate zero rows; the batch
// average is undefined.
type EmptyBatchError struct{}

func (e *EmptyBatchError) Error() string {
	return "cannot aggregate an empty batch"
}
