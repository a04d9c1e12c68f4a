// Package domprops holds the attribute-name tables the property differ and
// the event plugin registry both consult: which prop names are
// booleans-as-presence, which are the special-cased style/children/
// dangerouslySetInnerHTML/ref/key props host instances never forward as a
// literal attribute, and which prop names denote an event handler.
package domprops

import (
	"fmt"
	"strconv"
	"strings"
)

// reservedProps are stored in props by element.CreateElement but handled
// structurally (children by the multi-child diff), so the property differ
// never writes them as ordinary attributes.
var reservedProps = map[string]bool{
	"children": true,
}

// IsReserved reports whether name is handled structurally rather than as
// an attribute/property.
func IsReserved(name string) bool { return reservedProps[name] }

// booleanAttrs mirrors the handful of HTML attributes whose presence (not
// value) matters: setting false must remove the attribute entirely rather
// than write the string "false".
var booleanAttrs = map[string]bool{
	"checked": true, "disabled": true, "selected": true, "readonly": true,
	"required": true, "multiple": true, "autofocus": true, "hidden": true,
}

// IsBooleanAttr reports whether name follows the present/absent
// convention rather than taking an arbitrary string value.
func IsBooleanAttr(name string) bool { return booleanAttrs[name] }

// EventNameForProp returns the lowercase DOM event name an "onXxx" style
// prop name refers to, e.g. "onClick" -> "click". ok is false for any
// prop that is not an event handler.
func EventNameForProp(propName string) (string, bool) {
	if len(propName) <= 2 || propName[0] != 'o' || propName[1] != 'n' {
		return "", false
	}
	third := propName[2]
	if third < 'A' || third > 'Z' {
		return "", false
	}
	return strings.ToLower(propName[2:]), true
}

// IsCustomElementTag reports whether tag should skip property-vs-attribute
// translation entirely and have every prop set as a plain DOM attribute,
// matching how custom elements (tag names containing a hyphen) are
// expected to receive their configuration.
func IsCustomElementTag(tag string) bool {
	return strings.Contains(tag, "-")
}

const (
	// StyleProp is the prop name carrying a map[string]any of CSS
	// declarations, diffed key-by-key rather than replaced wholesale.
	StyleProp = "style"
	// DangerousHTMLProp bypasses the child reconciler and sets raw
	// innerHTML instead, the one deliberate XSS-shaped escape hatch a
	// caller must opt into explicitly by naming it this way.
	DangerousHTMLProp = "dangerouslySetInnerHTML"
	// DangerousHTMLKey is the key inside the DangerousHTMLProp map whose
	// value is the literal HTML string.
	DangerousHTMLKey = "__html"
)

// unitlessStyleProps mirrors React's isUnitlessNumber table: CSS properties
// whose numeric value is used bare rather than suffixed with "px".
var unitlessStyleProps = map[string]bool{
	"animationIterationCount": true,
	"aspectRatio":             true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"boxFlex":                 true,
	"boxFlexGroup":            true,
	"boxOrdinalGroup":         true,
	"columnCount":             true,
	"columns":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexPositive":            true,
	"flexShrink":              true,
	"flexNegative":            true,
	"flexOrder":               true,
	"fontWeight":              true,
	"gridArea":                true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowSpan":             true,
	"gridRowStart":            true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnSpan":          true,
	"gridColumnStart":         true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// IsUnitlessStyleProp reports whether name's numeric value should be
// stringified bare rather than suffixed with "px".
func IsUnitlessStyleProp(name string) bool { return unitlessStyleProps[name] }

// NormalizeStyleValue applies the dangerous-style-value rule a style map's
// raw values are passed through before being written to the DOM: nil, a
// bool, or an empty string all collapse to "" (clearing the property);
// a number is suffixed "px" unless it is zero or name is a unitless
// property; any other string is trimmed.
func NormalizeStyleValue(name string, v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return ""
	case string:
		if t == "" {
			return ""
		}
		return strings.TrimSpace(t)
	case float64:
		return normalizeNumericStyleValue(name, t)
	case float32:
		return normalizeNumericStyleValue(name, float64(t))
	case int:
		return normalizeNumericStyleValue(name, float64(t))
	case int64:
		return normalizeNumericStyleValue(name, float64(t))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

func normalizeNumericStyleValue(name string, n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if n == 0 || IsUnitlessStyleProp(name) {
		return s
	}
	return s + "px"
}
