package encoding

const (
	// FirstLineLength is how many input bytes ConvertFirstLine converts
	// when no limit is given. It is enough for an XML declaration or a
	// short <meta charset> but deliberately approximate.
	FirstLineLength    = 45
	maxFirstLineLength = 180
)

// ConvertFirstLine converts at most limit bytes of src to UTF-8 so that
// an encoding declaration can be read before committing to a full
// conversion. A limit of zero or less means FirstLineLength; limits over
// 180 bytes are clamped.
func (h *Handler) ConvertFirstLine(dst, src []byte, limit int) ([]byte, int, Status) {
	if limit <= 0 {
		limit = FirstLineLength
	}
	if limit > maxFirstLineLength {
		limit = maxFirstLineLength
	}
	if len(src) > limit {
		src = src[:limit]
	}
	// never final: the cut may land inside a multibyte sequence
	return h.ToUTF8(dst, src, false)
}
