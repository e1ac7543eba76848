package style

import "strings"

// Keyword is an enumerated style value such as "center" or "border-box".
type Keyword uint8

// Keywords, named after their CSS spelling (KeywordTopLeft is "top-left").
const (
	KeywordNone Keyword = iota
	KeywordAuto
	KeywordInherit
	KeywordContain
	KeywordCover
	KeywordLeft
	KeywordCenter
	KeywordRight
	KeywordTop
	KeywordTopLeft
	KeywordTopCenter
	KeywordTopRight
	KeywordMiddle
	KeywordCenterLeft
	KeywordCenterCenter
	KeywordCenterRight
	KeywordBottom
	KeywordBottomLeft
	KeywordBottomCenter
	KeywordBottomRight
	KeywordSolid
	KeywordDotted
	KeywordDouble
	KeywordDashed
	KeywordContentBox
	KeywordPaddingBox
	KeywordBorderBox
	KeywordGraphBox
	KeywordStatic
	KeywordRelative
	KeywordAbsolute
	KeywordBlock
	KeywordInlineBlock
	KeywordFlex
	KeywordFlexStart
	KeywordFlexEnd
	KeywordNowrap

	keywordCount
)

var keywordNames = [keywordCount]string{
	KeywordNone:         "none",
	KeywordAuto:         "auto",
	KeywordInherit:      "inherit",
	KeywordContain:      "contain",
	KeywordCover:        "cover",
	KeywordLeft:         "left",
	KeywordCenter:       "center",
	KeywordRight:        "right",
	KeywordTop:          "top",
	KeywordTopLeft:      "top-left",
	KeywordTopCenter:    "top-center",
	KeywordTopRight:     "top-right",
	KeywordMiddle:       "middle",
	KeywordCenterLeft:   "center-left",
	KeywordCenterCenter: "center-center",
	KeywordCenterRight:  "center-right",
	KeywordBottom:       "bottom",
	KeywordBottomLeft:   "bottom-left",
	KeywordBottomCenter: "bottom-center",
	KeywordBottomRight:  "bottom-right",
	KeywordSolid:        "solid",
	KeywordDotted:       "dotted",
	KeywordDouble:       "double",
	KeywordDashed:       "dashed",
	KeywordContentBox:   "content-box",
	KeywordPaddingBox:   "padding-box",
	KeywordBorderBox:    "border-box",
	KeywordGraphBox:     "graph-box",
	KeywordStatic:       "static",
	KeywordRelative:     "relative",
	KeywordAbsolute:     "absolute",
	KeywordBlock:        "block",
	KeywordInlineBlock:  "inline-block",
	KeywordFlex:         "flex",
	KeywordFlexStart:    "flex-start",
	KeywordFlexEnd:      "flex-end",
	KeywordNowrap:       "nowrap",
}

var keywordsByName = func() map[string]Keyword {
	m := make(map[string]Keyword, keywordCount)
	for k, n := range keywordNames {
		m[n] = Keyword(k)
	}
	return m
}()

// String returns the CSS spelling of k.
func (k Keyword) String() string {
	if k >= keywordCount {
		return "unknown"
	}
	return keywordNames[k]
}

// IsValid reports whether k is a known keyword.
func (k Keyword) IsValid() bool { return k < keywordCount }

// ParseKeyword looks a keyword up by its CSS spelling, ignoring case.
func ParseKeyword(name string) (Keyword, bool) {
	k, ok := keywordsByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}
