package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"resumely/internal/model"

	"golang.org/x/net/publicsuffix"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// esc escapes free-form user text for interpolation into markup. Summary and
// description fields are arbitrary input; this is a security invariant, not
// a style choice.
func esc(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}

// dateRange renders "start - end", "start - Present" when the entry is
// ongoing, or "" without a start. A current entry ignores whatever end date
// is still stored.
func dateRange(start, end string, current bool) string {
	if start == "" {
		return ""
	}
	e := end
	if current {
		e = "Present"
	}
	if e == "" {
		return start
	}
	return start + " - " + e
}

// effective fills presentation defaults so no theme crashes on an absent
// accent color or a zero font size. Works on a copy; the caller's settings
// are never touched.
func effective(s model.Settings) model.Settings {
	if s.AccentColor == "" {
		s.AccentColor = model.DefaultAccentColor
	}
	if s.FontSize <= 0 {
		s.FontSize = model.DefaultFontSize
	}
	if s.FontStyle == "" {
		s.FontStyle = model.DefaultFontStyle
	}
	return s
}

var fontFamilies = map[string]string{
	"professional": "'Merriweather', Georgia, serif",
	"modern":       "'Inter', sans-serif",
	"classic":      "Georgia, serif",
	"roboto":       "'Roboto', sans-serif",
	"poppins":      "'Poppins', sans-serif",
	"lato":         "'Lato', sans-serif",
	"opensans":     "'Open Sans', sans-serif",
	"playfair":     "'Playfair Display', serif",
	"montserrat":   "'Montserrat', sans-serif",
	"raleway":      "'Raleway', sans-serif",
	"sourcesans":   "'Source Sans 3', sans-serif",
}

func fontFamily(style string) string {
	if f, ok := fontFamilies[style]; ok {
		return f
	}
	return fontFamilies["professional"]
}

// adjustColor lightens (positive) or darkens (negative) a #RRGGBB color.
// Anything unparsable comes back unchanged.
func adjustColor(hex string, amount int) string {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 6 {
		return hex
	}
	n, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return hex
	}
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}
	r := clamp(int(n>>16) + amount)
	g := clamp(int(n>>8&0xFF) + amount)
	b := clamp(int(n&0xFF) + amount)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// displayHost compacts a profile or website URL to its registrable domain
// for contact lines ("https://www.example.co.uk/me" -> "example.co.uk").
func displayHost(raw string) string {
	if raw == "" {
		return ""
	}
	in := raw
	if !strings.Contains(in, "://") {
		in = "https://" + in
	}
	u, err := url.Parse(in)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := u.Hostname()
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

// joinNonEmpty joins the non-empty, escaped values with sep.
func joinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, esc(v))
		}
	}
	return strings.Join(out, sep)
}

// firstNonEmpty supports labels that fall back across entry fields (awards
// use title, custom sections may use name).
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func skillLevel(e model.Entry) int {
	if e.Level >= 1 && e.Level <= 5 {
		return e.Level
	}
	return model.DefaultSkillLevel
}
