package pagination

import (
	"regexp"
	"strconv"
	"strings"
)

const defaultPageParam = "page"

var defaultPagePattern = regexp.MustCompile(`page=\d+`)

// URLRewriter points URLs at another page by replacing the page parameter.
//
// In the default mode every "<param>=<digits>" token is cut out of the URL
// as-is, so separators around it are left behind:
//
//	/items?sort=asc&page=1 -> /items?sort=asc&&page=3
//
// With Normalize set, the query string is split on "&", empty pairs and
// every pair named Param are dropped, and the fragment is kept at the end:
//
//	/items?sort=asc&page=1#top -> /items?sort=asc&page=3#top
//
// Neither mode escapes or validates the URL.
type URLRewriter struct {
	Param     string
	Normalize bool
}

// CreateURL rewrites rawURL to request page using the "page" parameter and
// the default mode.
func CreateURL(rawURL string, page int) string {
	return URLRewriter{}.Rewrite(rawURL, page)
}

// Rewrite returns rawURL with its page parameter set to page.
func (r URLRewriter) Rewrite(rawURL string, page int) string {
	param := r.Param
	if param == "" {
		param = defaultPageParam
	}
	pair := param + "=" + strconv.Itoa(page)

	if r.Normalize {
		return rewriteNormalized(rawURL, param, pair)
	}

	pattern := defaultPagePattern
	if param != defaultPageParam {
		pattern = regexp.MustCompile(regexp.QuoteMeta(param) + `=\d+`)
	}

	// Removing the only parameter leaves a bare "?".
	u := strings.TrimRight(pattern.ReplaceAllString(rawURL, ""), "?")

	if strings.Contains(u, "?") {
		return u + "&" + pair
	}
	return u + "?" + pair
}

func rewriteNormalized(rawURL, param, pair string) string {
	u, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, query, _ := strings.Cut(u, "?")

	kept := make([]string, 0, strings.Count(query, "&")+2)
	for _, p := range strings.Split(query, "&") {
		if p == "" {
			continue
		}
		key, _, _ := strings.Cut(p, "=")
		if key == param {
			continue
		}
		kept = append(kept, p)
	}
	kept = append(kept, pair)

	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('?')
	b.WriteString(strings.Join(kept, "&"))
	if hasFragment {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}
