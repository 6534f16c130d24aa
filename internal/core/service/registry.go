package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

// ComponentRegistry holds the matcher strategies and reporters a run can
// be configured with, keyed by their type name.
type ComponentRegistry struct {
	matchers  map[string]ports.Matcher
	reporters map[string]ports.Reporter
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		matchers:  make(map[string]ports.Matcher),
		reporters: make(map[string]ports.Reporter),
	}
}

func (r *ComponentRegistry) RegisterMatcher(matcher ports.Matcher) error {
	if matcher == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil matcher")
	}
	matcherType := matcher.Type()
	if matcherType == "" {
		return errors.New(errors.CodeInternal, "matcher type cannot be empty")
	}
	if _, exists := r.matchers[matcherType]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("matcher type '%s' already registered", matcherType))
	}
	r.matchers[matcherType] = matcher
	return nil
}

func (r *ComponentRegistry) GetMatcher(matcherType string) (ports.Matcher, error) {
	matcher, exists := r.matchers[matcherType]
	if !exists {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported matcher type: %s", matcherType),
			"Supported: "+strings.Join(sortedKeys(r.matchers), ", "))
	}
	return matcher, nil
}

func (r *ComponentRegistry) RegisterReporter(reporter ports.Reporter) error {
	if reporter == nil {
		return errors.New(errors.CodeInternal, "attempted to register nil reporter")
	}
	reporterType := reporter.Type()
	if reporterType == "" {
		return errors.New(errors.CodeInternal, "reporter type cannot be empty")
	}
	if _, exists := r.reporters[reporterType]; exists {
		return errors.New(errors.CodeInternal, fmt.Sprintf("reporter type '%s' already registered", reporterType))
	}
	r.reporters[reporterType] = reporter
	return nil
}

func (r *ComponentRegistry) GetReporter(reporterType string) (ports.Reporter, error) {
	reporter, exists := r.reporters[reporterType]
	if !exists {
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", reporterType),
			"Supported: "+strings.Join(sortedKeys(r.reporters), ", "))
	}
	return reporter, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
