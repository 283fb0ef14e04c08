package pagination

// ParamSource supplies request parameters such as the current page.
// url.Values satisfies it, so a handler can pass r.URL.Query() directly.
type ParamSource interface {
	Has(key string) bool
	Get(key string) string
}

// pageFromSource reads the page parameter from src. It reports false when
// src is nil or does not carry the parameter.
func pageFromSource(src ParamSource, param string) (int, bool) {
	if src == nil || !src.Has(param) {
		return 0, false
	}
	return CoerceInt(ParseLenientInt(src.Get(param))), true
}
