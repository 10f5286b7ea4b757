package render

import (
	"net/url"
	"strings"
)

const googleFontsCSS = "https://fonts.googleapis.com/css2"

// Font is a web font loaded from Google Fonts and applied through a
// generated CSS class.
type Font struct {
	Family  string
	Subsets []string
}

// LoadFont describes a font family restricted to the given subsets.
func LoadFont(family string, subsets ...string) Font {
	return Font{Family: family, Subsets: subsets}
}

// StylesheetURL returns the Google Fonts stylesheet for the font.
func (f Font) StylesheetURL() string {
	q := url.Values{}
	q.Set("family", f.Family)
	if len(f.Subsets) > 0 {
		q.Set("subset", strings.Join(f.Subsets, ","))
	}
	q.Set("display", "swap")
	return googleFontsCSS + "?" + q.Encode()
}

// ClassName is the body class that applies the font, e.g. "font-inter".
func (f Font) ClassName() string {
	return "font-" + strings.ToLower(strings.ReplaceAll(f.Family, " ", "-"))
}
