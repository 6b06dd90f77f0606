package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName_VariantsShareKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"case", "Jane Doe", "JANE DOE"},
		{"whitespace", "  Jane   Doe ", "Jane Doe"},
		{"punctuation", "Friends of Jane Doe, Inc.", "FRIENDS OF JANE DOE INC"},
		{"ampersand", "Smith & Wesson", "Smith and Wesson"},
		{"hyphen", "AFL-CIO", "AFLCIO"},
		{"hyphenated surname", "Smith-Jones for Supervisor", "SmithJones for Supervisor"},
		{"slash", "Police/Fire PAC", "PoliceFire PAC"},
		{"apostrophe", "O'Brien for Supervisor", "OBrien for Supervisor"},
		{"trailing article", "Lincoln Club of San Diego County, The", "THE LINCOLN CLUB OF SAN DIEGO COUNTY"},
		{"known variant", "SD & Imperial Counties Labor Council", "San Diego and Imperial Counties Labor Council, AFL-CIO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NormalizeName(tt.a), NormalizeName(tt.b))
			assert.NotEmpty(t, NormalizeName(tt.a))
		})
	}
}

func TestNormalizeName_DistinctNamesDiffer(t *testing.T) {
	assert.NotEqual(t, NormalizeName("Jane Doe"), NormalizeName("John Doe"))
	assert.NotEqual(t, NormalizeName("Lincoln Club"), NormalizeName("Lincoln Club of San Diego County"))
}

func TestNormalizeName_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "AFLCIO", NormalizeName("AFL-CIO"))
	assert.Equal(t, "SMITHJONES FOR SUPERVISOR", NormalizeName("Smith-Jones for Supervisor"))
	assert.Equal(t, "US CHAMBER", NormalizeName("U.S. Chamber"))
}

func TestNormalizeName_Empty(t *testing.T) {
	assert.Equal(t, "", NormalizeName(""))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "", NormalizeName(",.;"))
}

func TestNormalizeName_KeyForm(t *testing.T) {
	assert.Equal(t, "FRIENDS OF JANE DOE INC", NormalizeName("friends of  jane doe, inc."))
}

func TestNormalizeName_Deterministic(t *testing.T) {
	in := "The Lincoln Club of San Diego County"
	assert.Equal(t, NormalizeName(in), NormalizeName(in))
	assert.Equal(t, NormalizeName(in), NormalizeName(NormalizeName(in)))
}

func TestCanonicalName(t *testing.T) {
	name, ok := CanonicalName("lincoln club of san diego county, the")
	assert.True(t, ok)
	assert.Equal(t, "The Lincoln Club of San Diego County", name)

	_, ok = CanonicalName("Some Other Committee")
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lincoln Club of San Diego County, The", "The Lincoln Club of San Diego County"},
		{"THE LINCOLN CLUB OF SAN DIEGO COUNTY", "The Lincoln Club of San Diego County"},
		{"JANE DOE", "Jane Doe"},
		{"jane   doe", "Jane Doe"},
		{"Acme Corp, The", "The Acme Corp"},
		{"Friends of ABC", "Friends of ABC"},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.in))
		})
	}
}

func TestDisplayName_SharesKeyWithInput(t *testing.T) {
	inputs := []string{
		"Lincoln Club of San Diego County, The",
		"JANE DOE",
		"Acme Corp, The",
		"Friends of ABC",
	}
	for _, in := range inputs {
		assert.Equal(t, NormalizeName(in), NormalizeName(DisplayName(in)), in)
	}
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpace("  a \t b\n c "))
	assert.Equal(t, "", CollapseSpace(""))
}
