package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseRuleSetYAML reads a rule set from a YAML mapping, keeping the document's key order.
// Each value is either a pipe-delimited string or a list of declarations:
//
//	email: required|email
//	tags.*:
//	  - string
//	  - regex:^[a-z]+(-[a-z]+)*$
func ParseRuleSetYAML(data []byte) (RuleSet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return RuleSet{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected mapping at line %d", ErrInvalidRuleSet, root.Line)
	}

	rs := make(RuleSet, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		switch val.Kind {
		case yaml.ScalarNode:
			rs = append(rs, Field(key.Value, val.Value))
		case yaml.SequenceNode:
			decls := make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("%w: rules for %q must be strings (line %d)", ErrInvalidRuleSet, key.Value, item.Line)
				}
				decls = append(decls, item.Value)
			}
			rs = append(rs, FieldList(key.Value, decls...))
		default:
			return nil, fmt.Errorf("%w: rules for %q must be a string or a list (line %d)", ErrInvalidRuleSet, key.Value, val.Line)
		}
	}
	return rs, nil
}

// ParseRuleSetJSON reads a rule set from a JSON object, keeping the document's key order.
// Values follow the same shape as ParseRuleSetYAML.
func ParseRuleSetJSON(data []byte) (RuleSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected JSON object", ErrInvalidRuleSet)
	}

	rs := RuleSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Join(ErrInvalidRuleSet, err)
		}
		pattern := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Join(ErrInvalidRuleSet, err)
		}

		var piped string
		if err := json.Unmarshal(raw, &piped); err == nil {
			rs = append(rs, Field(pattern, piped))
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("%w: rules for %q must be a string or a list of strings", ErrInvalidRuleSet, pattern)
		}
		rs = append(rs, FieldList(pattern, list...))
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}
	return rs, nil
}
