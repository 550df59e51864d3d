package truncate

// NewTruncator starts a builder defaulted to DefaultOmission, PositionEnd,
// and a zero maxLength (callers must set one before Build is useful).
func NewTruncator() *TruncatorBuilder {
	return &TruncatorBuilder{omission: DefaultOmission, position: PositionEnd}
}

// WithOmission sets the marker inserted where characters are removed.
func (b *TruncatorBuilder) WithOmission(omission string) *TruncatorBuilder {
	b.omission = omission
	return b
}

// WithPosition sets where the omission marker is placed.
func (b *TruncatorBuilder) WithPosition(position Position) *TruncatorBuilder {
	b.position = position
	return b
}

// WithMaxLength sets the maximum rune count of the truncated result,
// omission marker included.
func (b *TruncatorBuilder) WithMaxLength(maxLength int) *TruncatorBuilder {
	b.maxLength = maxLength
	return b
}

// Build freezes the accumulated configuration into a Truncator.
func (b *TruncatorBuilder) Build() *Truncator {
	return &Truncator{omission: b.omission, position: b.position, maxLength: b.maxLength}
}
