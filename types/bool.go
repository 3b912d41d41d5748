package types

// installBoolCoercion wraps d so that reads yield a Go bool and writes accept
// either a bool or a number. Numbers are written unchanged; bools become 1
// or 0 before reaching the integer encoder underneath. The wrappers call
// through d's base, so later overrides on the base stay visible.
func installBoolCoercion(d *Descriptor) {
	base := d.Base()

	d.OverrideGet(func(b []byte, off int) any {
		return truthy(base.Get(b, off))
	})
	d.OverrideSet(func(b []byte, off int, v any) error {
		if flag, ok := v.(bool); ok {
			if flag {
				v = 1
			} else {
				v = 0
			}
		}
		return base.Set(b, off, v)
	})
}
