package fixture

import "fmt"

// Mismatch describes a sample whose verdict differed from the expected one.
type Mismatch struct {
	Sample Sample
	Err    error  // Error returned by the validator, nil if it accepted
	Reason string // Human-readable description of the difference
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%q: %s", m.Sample.Mail, m.Reason)
}

// Check runs every sample through validate and returns the mismatches,
// in file order. A rejected sample must also produce exactly the message
// "invalid format: <mail>".
func Check(f *File, validate func(string) error) []Mismatch {
	var mismatches []Mismatch
	for _, s := range f.Samples {
		err := validate(s.Mail)
		switch {
		case s.Format && err != nil:
			mismatches = append(mismatches, Mismatch{
				Sample: s,
				Err:    err,
				Reason: fmt.Sprintf("expected valid mail, got %v", err),
			})
		case !s.Format && err == nil:
			mismatches = append(mismatches, Mismatch{
				Sample: s,
				Reason: "expected invalid mail, got accepted",
			})
		case !s.Format:
			want := "invalid format: " + s.Mail
			if err.Error() != want {
				mismatches = append(mismatches, Mismatch{
					Sample: s,
					Err:    err,
					Reason: fmt.Sprintf("error %q, want %q", err.Error(), want),
				})
			}
		}
	}
	return mismatches
}
