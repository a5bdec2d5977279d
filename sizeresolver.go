package tcss

// Fallback sizes for a widget that has no style dimension and no content
// to measure.
const (
	defaultFixedWidth  = 10
	defaultFixedHeight = 3
)

// resolveWidth computes a child's width within availWidth. Fractions
// fill the available extent here; linear and grid layouts resolve them
// before calling. Auto measures content, falling back to the default
// fixed width when there is nothing to measure. Min/max each resolve in
// their own unit, then box-sizing chrome applies.
func resolveWidth(c LayoutChild, availWidth, availHeight int, viewport Size) int {
	s := c.Style
	w := availWidth
	switch {
	case s == nil || s.Width == nil || s.Width.IsAuto():
		if iw := c.intrinsicWidth(availHeight); iw > 0 {
			w = iw
			if s != nil {
				w += s.ChromeX()
			}
		} else if s == nil || s.Width == nil {
			w = min(availWidth, defaultFixedWidth)
		}
		// An auto width with no content fills the available extent.
		if s != nil && s.Width != nil && s.Width.IsAuto() && c.IntrinsicWidth == nil {
			w = availWidth
		}
	case s.Width.IsFraction():
		w = availWidth
	default:
		w = s.Width.Resolve(availWidth, viewport)
		w = applyBoxSizingX(s, w)
	}
	return clampWidth(s, w, availWidth, viewport)
}

// resolveHeight mirrors resolveWidth on the vertical axis. Auto measures
// content at the resolved width.
func resolveHeight(c LayoutChild, width, availHeight int, viewport Size) int {
	s := c.Style
	h := availHeight
	switch {
	case s == nil || s.Height == nil || s.Height.IsAuto():
		inner := width
		if s != nil {
			inner -= s.ChromeX()
		}
		if ih := c.intrinsicHeight(max(0, inner)); ih > 0 {
			h = ih
			if s != nil {
				h += s.ChromeY()
			}
		} else if s == nil || s.Height == nil {
			h = min(availHeight, defaultFixedHeight)
		} else {
			h = availHeight
		}
	case s.Height.IsFraction():
		h = availHeight
	default:
		h = s.Height.Resolve(availHeight, viewport)
		h = applyBoxSizingY(s, h)
	}
	return clampHeight(s, h, availHeight, viewport)
}

// applyBoxSizingX converts a content-box width to the outer box width.
// Border-box is already the outer width.
func applyBoxSizingX(s *Style, w int) int {
	if s != nil && s.BoxSizing == ContentBox {
		w += s.ChromeX()
	}
	return w
}

func applyBoxSizingY(s *Style, h int) int {
	if s != nil && s.BoxSizing == ContentBox {
		h += s.ChromeY()
	}
	return h
}

// clampWidth applies max-width then min-width, each resolved against the
// available extent, and floors at zero. Min wins over max when they
// conflict.
func clampWidth(s *Style, w, avail int, viewport Size) int {
	if s != nil {
		if s.MaxWidth != nil && !s.MaxWidth.IsAuto() {
			w = min(w, s.MaxWidth.Resolve(avail, viewport))
		}
		if s.MinWidth != nil && !s.MinWidth.IsAuto() {
			w = max(w, s.MinWidth.Resolve(avail, viewport))
		}
	}
	return max(0, w)
}

func clampHeight(s *Style, h, avail int, viewport Size) int {
	if s != nil {
		if s.MaxHeight != nil && !s.MaxHeight.IsAuto() {
			h = min(h, s.MaxHeight.Resolve(avail, viewport))
		}
		if s.MinHeight != nil && !s.MinHeight.IsAuto() {
			h = max(h, s.MinHeight.Resolve(avail, viewport))
		}
	}
	return max(0, h)
}
