package fixture

import (
	"errors"
	"fmt"

	"github.com/checkmail/checkmail-go/internal/safefile"
	"gopkg.in/yaml.v3"
)

const (
	// MaxFileSize is the maximum allowed size for a sample file (1MB).
	MaxFileSize = 1 * 1024 * 1024

	// MaxSampleCount is the maximum number of samples in one file.
	MaxSampleCount = 10000

	// SupportedVersion is the currently supported sample file format version.
	SupportedVersion = 1
)

// Load reads and parses a sample file from the given path.
// Symlinks, FIFOs and other special files are refused. Error messages
// never include the path.
//
// Example:
//
//	f, err := fixture.Load("testdata/samples.yaml")
//	if err != nil {
//	    log.Fatalf("failed to load sample file: %v", err)
//	}
func Load(path string) (*File, error) {
	data, err := safefile.ReadFile(path, MaxFileSize)
	if err != nil {
		if errors.Is(err, safefile.ErrNotRegularFile) {
			return nil, errors.New("sample file must be a regular file (not symlink, FIFO, device, or directory)")
		}
		return nil, fmt.Errorf("failed to read sample file: %w", safefile.StripPath(err))
	}
	return LoadBytes(data)
}

// LoadBytes parses a sample file from a byte slice.
func LoadBytes(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("sample file is empty")
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("sample file too large: %d bytes (max %d)", len(data), MaxFileSize)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate performs schema-level validation on the sample file.
// It checks for:
//   - Supported version number
//   - At least one sample, and no more than MaxSampleCount
//   - Unique mail values
func (f *File) Validate() error {
	if f.Version != SupportedVersion {
		return &SchemaError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (only version %d is supported)", f.Version, SupportedVersion),
		}
	}

	if len(f.Samples) == 0 {
		return &SchemaError{
			Field:   "samples",
			Message: "at least one sample is required",
		}
	}
	if len(f.Samples) > MaxSampleCount {
		return &SchemaError{
			Field:   "samples",
			Message: fmt.Sprintf("too many samples (%d), maximum allowed is %d", len(f.Samples), MaxSampleCount),
		}
	}

	seen := make(map[string]int, len(f.Samples))
	for i, s := range f.Samples {
		if prev, exists := seen[s.Mail]; exists {
			return &SampleError{
				Index:   i,
				Mail:    s.Mail,
				Field:   "mail",
				Message: fmt.Sprintf("duplicate mail (previously defined at sample[%d])", prev),
			}
		}
		seen[s.Mail] = i
	}

	return nil
}
