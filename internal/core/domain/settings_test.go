package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "data", s.Data.Base)
	assert.False(t, s.Data.IsRemote())
	for _, kind := range DatasetKinds {
		name, ok := s.Data.File(kind)
		assert.True(t, ok, kind)
		assert.NotEmpty(t, name)
	}
	assert.Equal(t, time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC), s.Election.PrimaryDate)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), s.Election.RunoffDate)
	assert.Equal(t, 10, s.Dashboard.TopN)
	assert.Equal(t, []string{"Paloma Aguirre", "John McCann"}, s.Dashboard.Candidates)
	assert.Equal(t, []string{"F497P2"}, s.Contributions.ExcludedForms)
	assert.False(t, s.Merge.IsConfigured())
}

func TestDataSettings_Location(t *testing.T) {
	tests := []struct {
		name string
		base string
		want string
	}{
		{"relative dir", "data", "data/expenditures.csv"},
		{"remote", "https://example.org/d1/", "https://example.org/d1/expenditures.csv"},
		{"remote no slash", "http://example.org/d1", "http://example.org/d1/expenditures.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DataSettings{Base: tt.base, Files: map[DatasetKind]string{DatasetExpenditures: "expenditures.csv"}}
			assert.Equal(t, tt.want, d.Location(DatasetExpenditures))
		})
	}
}

func TestDataSettings_File_Unconfigured(t *testing.T) {
	d := DataSettings{Files: map[DatasetKind]string{DatasetContributions: ""}}

	_, ok := d.File(DatasetContributions)
	assert.False(t, ok)
	_, ok = d.File(DatasetExpenditures)
	assert.False(t, ok)
	assert.Empty(t, d.Location(DatasetExpenditures))
}

func TestElectionSettings_Date(t *testing.T) {
	s := DefaultAppSettings().Election

	assert.Equal(t, s.PrimaryDate, s.Date(ElectionPrimary))
	assert.Equal(t, s.RunoffDate, s.Date(ElectionRunoff))
}

func TestMergeOverride_IsConfigured(t *testing.T) {
	assert.False(t, MergeOverride{FilerID: "1234"}.IsConfigured())
	assert.False(t, MergeOverride{Name: "Committee"}.IsConfigured())
	assert.False(t, MergeOverride{FilerID: " ", Name: "Committee"}.IsConfigured())
	assert.True(t, MergeOverride{FilerID: "1234", Name: "Committee"}.IsConfigured())
}
