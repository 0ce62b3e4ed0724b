package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSizes_AliasesAndPassthrough(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Small", "s"},
		{"SM", "s"},
		{"  lg ", "l"},
		{"2xl", "xxl"},
		{"xl", "xl"},
		{"medium", "m"},
		{"MD", "m"},
		{"xlg", "xl"},
		{"xxlg", "xxl"},
		{"Large", "l"},
		// unknown token passes through trimmed and lowercased
		{" OneSize ", "onesize"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeSizes(FlexStrings{tt.in})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestNormalizeSizes_EmptyAndNil(t *testing.T) {
	assert.Empty(t, NormalizeSizes(nil))
	assert.Empty(t, NormalizeSizes(FlexStrings{}))
	assert.Empty(t, NormalizeSizes(FlexStrings{"  ", ""}))
}

func TestNormalizeSizes_StringAndListShapesAgree(t *testing.T) {
	var fromString FlexStrings
	require.NoError(t, fromString.UnmarshalJSON([]byte(`"s,m,xl"`)))

	var fromList FlexStrings
	require.NoError(t, fromList.UnmarshalJSON([]byte(`["s","m","xl"]`)))

	assert.Equal(t, NormalizeSizes(fromList), NormalizeSizes(fromString))
	assert.Equal(t, []string{"s", "m", "xl"}, NormalizeSizes(fromString))
}

func TestNormalizeColors(t *testing.T) {
	got := NormalizeColors(FlexStrings{" Red", "NAVY ", "", "off-white"})
	assert.Equal(t, []string{"red", "navy", "off-white"}, got)
}

func TestResolveImages_ListWinsOverLegacyField(t *testing.T) {
	p := Product{Images: []string{"a.jpg", "b.jpg"}, Image: "legacy.jpg"}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, ResolveImages(p))
}

func TestResolveImages_LegacyFieldFallback(t *testing.T) {
	p := Product{Image: "legacy.jpg"}
	assert.Equal(t, []string{"legacy.jpg"}, ResolveImages(p))
}

func TestResolveImages_NoImages(t *testing.T) {
	assert.Empty(t, ResolveImages(Product{}))
}

func TestResolveImageURL(t *testing.T) {
	base := "https://cdn.example.com"

	assert.Equal(t, "https://x.test/a.jpg", ResolveImageURL("https://x.test/a.jpg", base))
	assert.Equal(t, "http://x.test/a.jpg", ResolveImageURL("http://x.test/a.jpg", base))
	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", ResolveImageURL("uploads/a.jpg", base))
	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", ResolveImageURL("/uploads/a.jpg", base+"/"))
}

func TestProduct_Normalize(t *testing.T) {
	p := Product{
		Sizes:  FlexStrings{"Small", "2xl"},
		Colors: FlexStrings{" Red ", "Blue"},
		Image:  "legacy.jpg",
	}
	p.Normalize()

	assert.Equal(t, FlexStrings{"s", "xxl"}, p.Sizes)
	assert.Equal(t, FlexStrings{"red", "blue"}, p.Colors)
	assert.Equal(t, []string{"legacy.jpg"}, p.Images)
}
