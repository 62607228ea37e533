package confirm

import (
	"os"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"gopkg.in/yaml.v3"
)

// policyFile is the on-disk shape of a confirmation policy:
//
//	default: deny
//	operations:
//	  user-caches: allow
//	  spotlight-rebuild: deny
type policyFile struct {
	Default    string            `yaml:"default"`
	Operations map[string]string `yaml:"operations"`
}

// PolicyGate answers confirmations from a YAML policy file instead of the
// terminal. A deny behaves exactly like an interactive decline: the
// operation is recorded as skipped and the run continues.
type PolicyGate struct {
	defaultAllow bool
	decisions    map[string]bool
}

// LoadPolicyGate parses the policy file at path. Unknown decision words
// are a configuration error, not a silent deny.
func LoadPolicyGate(path string) (*PolicyGate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read policy file %s", path)
	}

	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "cannot parse policy file %s", path)
	}

	gate := &PolicyGate{decisions: make(map[string]bool)}

	gate.defaultAllow, err = parseDecision(pf.Default, "default")
	if err != nil {
		return nil, err
	}

	for id, word := range pf.Operations {
		allow, err := parseDecision(word, id)
		if err != nil {
			return nil, err
		}
		gate.decisions[id] = allow
	}

	return gate, nil
}

func parseDecision(word, key string) (bool, error) {
	switch word {
	case "allow", "yes":
		return true, nil
	case "deny", "no", "":
		return false, nil
	}
	return false, errors.Newf(errors.ErrConfigInvalid, "policy entry %q has unknown decision %q (want allow or deny)", key, word)
}

// Confirm looks the operation up in the policy, falling back to the
// default decision.
func (g *PolicyGate) Confirm(desc types.OperationDescriptor) (bool, error) {
	if allow, ok := g.decisions[desc.ID]; ok {
		return allow, nil
	}
	return g.defaultAllow, nil
}

// Ask answers nested questions with the policy's default decision; a
// policy file cannot anticipate free-form sub-questions.
func (g *PolicyGate) Ask(string) (bool, error) {
	return g.defaultAllow, nil
}
