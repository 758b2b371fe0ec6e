package analysis

import "github.com/microcosm-cc/bluemonday"

// htmlPolicy allows only the formatting tags the dashboard renders.
// Everything else, scripts included, is stripped.
var htmlPolicy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "ul", "li", "strong", "em", "br", "span", "b", "i")
	return p
}

// SanitizeHTML strips every tag and attribute not on the allow-list.
func SanitizeHTML(raw string) string {
	return htmlPolicy.Sanitize(raw)
}
