package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sumcheck/sumcheck/internal/arith"
	"github.com/sumcheck/sumcheck/pkg/errors"
)

var validate = validator.New()

// caseFile is the YAML document format for externally supplied cases.
type caseFile struct {
	Cases []caseSpec `yaml:"cases" validate:"required,min=1,dive"`
}

// caseSpec is one case entry. Policy is optional and falls back to the
// configured default. Operands and expected value default to zero, which
// are legitimate values, so only the name is required.
type caseSpec struct {
	Name     string `yaml:"name" validate:"required"`
	A        int64  `yaml:"a"`
	B        int64  `yaml:"b"`
	Expected int64  `yaml:"expected"`
	Policy   string `yaml:"policy" validate:"omitempty,oneof=checked wrap saturate"`
}

// LoadCaseFile reads and validates a YAML case file, returning cases ready
// for suite registration. Cases without an explicit policy use defaultPolicy.
func LoadCaseFile(path string, defaultPolicy arith.Policy) ([]Case, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCaseFileError(path, err)
	}

	var file caseFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, errors.NewCaseFileError(path, err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, errors.NewCaseFileError(path, err)
	}

	cases := make([]Case, 0, len(file.Cases))
	for i, spec := range file.Cases {
		policy := defaultPolicy
		if spec.Policy != "" {
			p, err := arith.ParsePolicy(spec.Policy)
			if err != nil {
				return nil, errors.NewCaseFileError(path, err)
			}
			policy = p
		}

		cases = append(cases, Case{
			Name:     spec.Name,
			A:        spec.A,
			B:        spec.B,
			Expected: spec.Expected,
			Policy:   policy,
			Location: fmt.Sprintf("%s:%d", filepath.Base(path), i+1),
		})
	}

	return cases, nil
}
