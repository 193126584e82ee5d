package schema

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/KilimcininKorOglu/asntypes/internal/types"
)

// ValidateOptions controls Validate.
type ValidateOptions struct {
	// MaxTagNumber is the largest tag number a definition or member may use.
	MaxTagNumber uint32
	// Strict rejects UNIVERSAL class tags written in the schema.
	Strict bool
}

// ValidationError reports a definition that cannot be encoded unambiguously.
type ValidationError struct {
	Type    string
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema: %s.%s: %s", e.Type, e.Field, e.Message)
	}
	return fmt.Sprintf("schema: %s: %s", e.Type, e.Message)
}

func newValidationError(t *Type, field, format string, args ...any) *ValidationError {
	return &ValidationError{Type: t.Name, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks every type of s and returns all problems found, combined
// with multierr. Use multierr.Errors to list them.
func Validate(s *Schema, opts ValidateOptions) error {
	if opts.MaxTagNumber == 0 {
		opts.MaxTagNumber = DefaultMaxTagNumber
	}

	var err error
	for _, t := range s.Types() {
		err = multierr.Append(err, validateType(t, opts))
	}
	return err
}

func validateType(t *Type, opts ValidateOptions) error {
	err := validateTags(t, opts)
	err = multierr.Append(err, validateConstraints(t))

	switch {
	case t.Kind == KindChoice:
		err = multierr.Append(err, validateChoice(t))
	case t.Kind == KindSet:
		err = multierr.Append(err, validateSet(t))
	case t.Kind == KindSequence:
		err = multierr.Append(err, validateSequence(t))
	case t.Kind == KindEnumerated:
		err = multierr.Append(err, validateEnumerated(t))
	}
	return err
}

func validateTags(t *Type, opts ValidateOptions) error {
	var err error
	check := func(field string, tag types.Tag) {
		if tag.Number > opts.MaxTagNumber {
			err = multierr.Append(err, newValidationError(t, field, "tag %s exceeds the maximum number %d", tag, opts.MaxTagNumber))
		}
		if opts.Strict && tag.Class == types.ClassUniversal {
			err = multierr.Append(err, newValidationError(t, field, "tag %s uses the UNIVERSAL class", tag))
		}
	}

	if t.tagged {
		check("", t.tag)
	}
	for _, c := range allComponents(t) {
		if c.tagged {
			check(c.Field.Name, c.Field.Tag)
		}
	}
	return err
}

func validateConstraints(t *Type) error {
	var err error
	for _, c := range t.constraints.All() {
		if !t.Kind.accepts(c.Kind()) {
			err = multierr.Append(err, newValidationError(t, "", "%s does not accept a %s constraint", t.Kind.Notation(), c.Kind()))
		}
	}
	if v, ok := t.constraints.Value(); ok && v.Bounds().IsEmpty() {
		err = multierr.Append(err, newValidationError(t, "", "value constraint %s permits no value", v))
	}
	if s, ok := t.constraints.Size(); ok && s.Bounds().IsEmpty() {
		err = multierr.Append(err, newValidationError(t, "", "size constraint %s permits no size", s))
	}
	if a, ok := t.constraints.PermittedAlphabet(); ok && len(a.Alphabet()) == 0 {
		err = multierr.Append(err, newValidationError(t, "", "permitted alphabet is empty"))
	}
	return err
}

func validateChoice(t *Type) error {
	if len(t.members) == 0 {
		return newValidationError(t, "", "CHOICE has no alternatives")
	}
	trees := append(treesOf(t.members), treesOf(t.extensions)...)
	if err := openAmong(t, allComponents(t)); err != nil {
		return err
	}
	if tag, dup := types.ChoiceOf(trees...).Duplicate(); dup {
		return newValidationError(t, "", "tag %s selects more than one alternative", tag)
	}
	return nil
}

func validateSet(t *Type) error {
	trees := append(treesOf(t.members), treesOf(t.extensions)...)
	if err := openAmong(t, allComponents(t)); err != nil {
		return err
	}
	if tag, dup := types.ChoiceOf(trees...).Duplicate(); dup {
		return newValidationError(t, "", "tag %s is used by more than one member", tag)
	}
	return nil
}

// validateSequence checks that every OPTIONAL or DEFAULT member is told
// apart from the members that may follow it, up to and including the next
// required one.
func validateSequence(t *Type) error {
	var err error
	all := allComponents(t)
	for i, c := range all {
		if !c.Field.IsOptionalOrDefault() {
			continue
		}
		if c.Field.TagTree.IsOpen() && i+1 < len(all) {
			err = multierr.Append(err, newValidationError(t, c.Field.Name, "untagged open type cannot be followed by another member"))
			continue
		}
		for _, next := range all[i+1:] {
			for _, tag := range c.Field.TagTree.Leaves() {
				if next.Field.TagTree.Contains(tag) {
					err = multierr.Append(err, newValidationError(t, c.Field.Name, "tag %s is also used by the following member %s", tag, next.Field.Name))
				}
			}
			if !next.Field.IsOptionalOrDefault() {
				break
			}
		}
	}
	return err
}

func validateEnumerated(t *Type) error {
	if len(t.items) == 0 {
		return newValidationError(t, "", "ENUMERATED has no items")
	}

	var err error
	names := make(map[string]struct{})
	values := make(map[int]string)
	for _, list := range [][]Item{t.items, t.extItems} {
		for _, it := range list {
			if _, dup := names[it.Name]; dup {
				err = multierr.Append(err, newValidationError(t, it.Name, "item name is used twice"))
			}
			names[it.Name] = struct{}{}
			if prev, dup := values[it.Value]; dup {
				err = multierr.Append(err, newValidationError(t, it.Name, "value %d is already used by %s", it.Value, prev))
				continue
			}
			values[it.Value] = it.Name
		}
	}
	return err
}

// openAmong reports an untagged open type that shares its list with other
// members; its tags cannot be told apart from theirs.
func openAmong(t *Type, cs []Component) error {
	if len(cs) < 2 {
		return nil
	}
	for _, c := range cs {
		if c.Field.TagTree.IsOpen() {
			return newValidationError(t, c.Field.Name, "untagged open type is ambiguous among %d members", len(cs))
		}
	}
	return nil
}

func allComponents(t *Type) []Component {
	return append(append([]Component(nil), t.members...), t.extensions...)
}
