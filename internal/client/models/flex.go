package models

import (
	"encoding/json"
	"strings"
)

// FlexStrings decodes the legacy union shape the backend uses for list-like
// fields: either a JSON array of strings or a single comma-joined string.
// Historical records are not schema-consistent, so decoding is permissive:
// null, absent, or unrecognized values degrade to an empty list instead of
// failing the whole record.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*f = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString == "" {
			*f = nil
			return nil
		}
		*f = strings.Split(asString, ",")
		return nil
	}

	// Unknown shape: drop the field rather than reject the record.
	*f = nil
	return nil
}

func (f FlexStrings) MarshalJSON() ([]byte, error) {
	if f == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(f))
}
