package service

// patchValue is the partial-update merge policy: a submitted zero value
// ("", 0) is treated as not provided and the stored value wins. A caller
// therefore cannot zero out a field through a partial update; that is the
// contract as shipped, and this function is the single place to change it
// should a null-aware merge ever be wanted.
func patchValue[T comparable](submitted, existing T) T {
	var zero T
	if submitted == zero {
		return existing
	}
	return submitted
}
