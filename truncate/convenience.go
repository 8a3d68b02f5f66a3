package truncate

// String truncates text to at most targetWidth display columns, attaching a
// trailing ellipsis if anything was cut. Content is kept from the start of
// the string.
func String(text string, targetWidth int) string {
	return NewTrailing().Truncate(text, targetWidth)
}

// StringLeading truncates text to at most targetWidth display columns,
// attaching a leading ellipsis if anything was cut. Content is kept from the
// end of the string.
func StringLeading(text string, targetWidth int) string {
	return NewLeading().Truncate(text, targetWidth)
}
