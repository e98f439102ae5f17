package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError lists every problem found in a profile.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Problems, "; "))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields and that project IDs are unique.
func (p *Profile) Validate() error {
	var problems []string

	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate profile: %w", err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}

	seen := make(map[string]int, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			continue
		}
		if first, ok := seen[proj.ID]; ok {
			problems = append(problems, fmt.Sprintf("project id %q used by entries %d and %d", proj.ID, first, i))
			continue
		}
		seen[proj.ID] = i
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
