package schema

// DefaultTagging is the tagging environment of modules that do not name one.
const DefaultTagging = TaggingExplicit

// DefaultMaxTagNumber is the largest tag number Validate accepts unless
// ValidateOptions says otherwise.
const DefaultMaxTagNumber = 1<<21 - 1

// DefaultValidateOptions returns the options used by Validate.
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{MaxTagNumber: DefaultMaxTagNumber}
}
