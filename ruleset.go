package rulebook

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/dmitrymomot/rulebook/pkg/validator"
)

// LoadRuleSet reads a rule set from a YAML (.yaml, .yml) or JSON (.json) file in fsys,
// keeping the file's pattern order.
func LoadRuleSet(fsys fs.FS, name string) (validator.RuleSet, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", validator.ErrInvalidRuleSet, err)
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return validator.ParseRuleSetYAML(data)
	case ".json":
		return validator.ParseRuleSetJSON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", validator.ErrInvalidRuleSet, path.Ext(name))
	}
}
