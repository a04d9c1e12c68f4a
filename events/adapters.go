package events

// boolField and stringField read a plugin-populated field off a synthetic
// event, tolerating a missing key as the type's zero value: the simple
// event plugin only populates the fields a given event kind actually
// carries.
func boolField(e *SyntheticEvent, name string) bool {
	v, _ := e.Get(name).(bool)
	return v
}

func stringField(e *SyntheticEvent, name string) string {
	v, _ := e.Get(name).(string)
	return v
}

func intField(e *SyntheticEvent, name string) int {
	v, _ := e.Get(name).(int)
	return v
}

// AdaptChangeEvent builds a Handler from a Go function expecting
// ChangeEventArgs, used for onInput/onChange props.
func AdaptChangeEvent(handler func(ChangeEventArgs)) Handler {
	return func(e *SyntheticEvent) {
		handler(ChangeEventArgs{Value: stringField(e, "value")})
	}
}

// AdaptKeyboardEvent builds a Handler from a Go function expecting
// KeyboardEventArgs, used for onKeyDown/onKeyUp/onKeyPress props.
func AdaptKeyboardEvent(handler func(KeyboardEventArgs)) Handler {
	return func(e *SyntheticEvent) {
		handler(KeyboardEventArgs{
			Key:      stringField(e, "key"),
			Code:     stringField(e, "code"),
			AltKey:   boolField(e, "altKey"),
			CtrlKey:  boolField(e, "ctrlKey"),
			ShiftKey: boolField(e, "shiftKey"),
			MetaKey:  boolField(e, "metaKey"),
		})
	}
}

// AdaptMouseEvent builds a Handler from a Go function expecting
// MouseEventArgs, used for onMouseDown/onMouseUp/onMouseMove props.
func AdaptMouseEvent(handler func(MouseEventArgs)) Handler {
	return func(e *SyntheticEvent) {
		handler(MouseEventArgs{
			ClientX:  intField(e, "clientX"),
			ClientY:  intField(e, "clientY"),
			Button:   intField(e, "button"),
			AltKey:   boolField(e, "altKey"),
			CtrlKey:  boolField(e, "ctrlKey"),
			ShiftKey: boolField(e, "shiftKey"),
			MetaKey:  boolField(e, "metaKey"),
		})
	}
}

// AdaptFocusEvent builds a Handler from a Go function expecting
// FocusEventArgs, used for onFocus/onBlur props.
func AdaptFocusEvent(handler func(FocusEventArgs)) Handler {
	return func(e *SyntheticEvent) {
		handler(FocusEventArgs{})
	}
}

// AdaptFormEvent builds a Handler from a Go function expecting
// FormEventArgs, used for onSubmit props. It calls PreventDefault itself,
// since a form's default navigation is almost never what a component
// wants.
func AdaptFormEvent(handler func(FormEventArgs)) Handler {
	return func(e *SyntheticEvent) {
		e.PreventDefault()
		handler(FormEventArgs{})
	}
}

// AdaptNoArgEvent builds a Handler from a Go function taking no
// arguments, used for onClick props that don't need the event object.
func AdaptNoArgEvent(handler func()) Handler {
	return func(e *SyntheticEvent) {
		handler()
	}
}
