package fixture

import "fmt"

// SchemaError reports a file-level problem such as an unsupported version.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %s: %s", e.Field, e.Message)
}

// SampleError reports a problem with a single sample.
type SampleError struct {
	Index   int    // 0-based index of the sample in the file
	Mail    string // Sample mail value
	Field   string
	Message string
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample[%d] %q: %s: %s", e.Index, e.Mail, e.Field, e.Message)
}
