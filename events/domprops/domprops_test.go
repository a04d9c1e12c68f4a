package domprops

import "testing"

func TestIsReserved(t *testing.T) {
	if !IsReserved("children") {
		t.Error("children should be reserved")
	}
	if IsReserved("id") {
		t.Error("id should not be reserved")
	}
}

func TestIsBooleanAttr(t *testing.T) {
	for _, name := range []string{"checked", "disabled", "hidden"} {
		if !IsBooleanAttr(name) {
			t.Errorf("%s should be a boolean attr", name)
		}
	}
	if IsBooleanAttr("value") {
		t.Error("value should not be a boolean attr")
	}
}

func TestEventNameForProp(t *testing.T) {
	cases := []struct {
		prop string
		name string
		ok   bool
	}{
		{"onClick", "click", true},
		{"onMouseEnter", "mouseenter", true},
		{"on", "", false},
		{"onclick", "", false},
		{"href", "", false},
	}
	for _, c := range cases {
		name, ok := EventNameForProp(c.prop)
		if ok != c.ok || name != c.name {
			t.Errorf("EventNameForProp(%q) = (%q, %v), want (%q, %v)", c.prop, name, ok, c.name, c.ok)
		}
	}
}

func TestIsCustomElementTag(t *testing.T) {
	if !IsCustomElementTag("my-widget") {
		t.Error("my-widget should be a custom element tag")
	}
	if IsCustomElementTag("div") {
		t.Error("div should not be a custom element tag")
	}
}

func TestNormalizeStyleValue(t *testing.T) {
	cases := []struct {
		name string
		prop string
		v    any
		want string
	}{
		{"nil", "color", nil, ""},
		{"false", "display", false, ""},
		{"true", "display", true, ""},
		{"empty string", "color", "", ""},
		{"trims whitespace", "color", "  red  ", "red"},
		{"unitless float", "opacity", 0.5, "0.5"},
		{"unitless int", "zIndex", 2, "2"},
		{"non-unitless gets px", "width", 10, "10px"},
		{"zero never gets px", "fontSize", 0, "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeStyleValue(c.prop, c.v); got != c.want {
				t.Errorf("NormalizeStyleValue(%q, %v) = %q, want %q", c.prop, c.v, got, c.want)
			}
		})
	}
}
