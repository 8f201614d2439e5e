package widgets

// Font is the text-metrics collaborator used by widgets for layout.
// It abstracts glyph measurement so the widget cores never depend on a
// concrete font implementation (atlas fonts, system fonts, terminal cells,
// fixed-width fonts for tests).
//
// All indices are rune indices into the string passed in.
type Font interface {
	// LineSpacing returns the vertical distance between two baselines.
	LineSpacing() float32

	// TextExtent returns the rendered pixel width of text.
	TextExtent(text string) float32

	// TextAdvance returns the horizontal pen advance after drawing text.
	// For most fonts this equals TextExtent; italic or kerned fonts differ.
	TextAdvance(text string) float32

	// CharAtPixel returns the rune index of the character covering pixel
	// offset x measured from the start of text, or the rune count of text
	// when x lies beyond its end.
	CharAtPixel(text string, x float32) int

	// HasGlyph returns true if the font can draw r.
	HasGlyph(r rune) bool
}
