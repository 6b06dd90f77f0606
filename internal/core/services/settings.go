package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driven"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDataBase           = "data.base"
	keyDataExpenditures   = "data.expenditures"
	keyDataContributions  = "data.contributions"
	keyDataBallotsPrimary = "data.ballots_primary"
	keyDataBallotsRunoff  = "data.ballots_runoff"
	keyPrimaryDate        = "election.primary_date"
	keyRunoffDate         = "election.runoff_date"
	keyTopN               = "dashboard.top_n"
	keyCandidates         = "dashboard.candidates"
	keyExcludedForms      = "contributions.excluded_forms"
	keyRequestsPerSecond  = "fetch.requests_per_second"
	keyMergeFilerID       = "merge.filer_id"
	keyMergeName          = "merge.name"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindList
	kindDate
)

// settingKeys declares the type of every recognised key.
var settingKeys = map[string]valueKind{
	keyDataBase:           kindString,
	keyDataExpenditures:   kindString,
	keyDataContributions:  kindString,
	keyDataBallotsPrimary: kindString,
	keyDataBallotsRunoff:  kindString,
	keyPrimaryDate:        kindDate,
	keyRunoffDate:         kindDate,
	keyTopN:               kindInt,
	keyCandidates:         kindList,
	keyExcludedForms:      kindList,
	keyRequestsPerSecond:  kindFloat,
	keyMergeFilerID:       kindString,
	keyMergeName:          kindString,
}

// datasetKeys maps each dataset to its file-name key.
var datasetKeys = map[domain.DatasetKind]string{
	domain.DatasetExpenditures:   keyDataExpenditures,
	domain.DatasetContributions:  keyDataContributions,
	domain.DatasetBallotsPrimary: keyDataBallotsPrimary,
	domain.DatasetBallotsRunoff:  keyDataBallotsRunoff,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	overrides   map[string]string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		overrides:   make(map[string]string),
	}
}

// Override sets a value for this process only, taking precedence over the
// stored configuration. Used for command-line flags such as --data.
func (s *SettingsService) Override(key, value string) {
	s.overrides[key] = value
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	files := make(map[domain.DatasetKind]string, len(datasetKeys))
	for kind, key := range datasetKeys {
		files[kind] = s.getString(key, defaults.Data.Files[kind])
	}

	primary, err := s.getDate(keyPrimaryDate, defaults.Election.PrimaryDate)
	if err != nil {
		return nil, err
	}
	runoff, err := s.getDate(keyRunoffDate, defaults.Election.RunoffDate)
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		Data: domain.DataSettings{
			Base:  s.getString(keyDataBase, defaults.Data.Base),
			Files: files,
		},
		Election: domain.ElectionSettings{
			PrimaryDate: primary,
			RunoffDate:  runoff,
		},
		Dashboard: domain.DashboardSettings{
			TopN:       s.getInt(keyTopN, defaults.Dashboard.TopN),
			Candidates: s.getList(keyCandidates, defaults.Dashboard.Candidates),
		},
		Contributions: domain.ContributionSettings{
			ExcludedForms: s.getList(keyExcludedForms, defaults.Contributions.ExcludedForms),
		},
		Fetch: domain.FetchSettings{
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, defaults.Fetch.RequestsPerSecond),
		},
		Merge: domain.MergeOverride{
			FilerID: s.getString(keyMergeFilerID, ""),
			Name:    s.getString(keyMergeName, ""),
		},
	}

	return settings, nil
}

// Set validates and stores a single key.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	typed, err := parseSetting(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
	}
	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every recognised key in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKeys))
	for k := range settingKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Raw returns the effective value of a key as text.
func (s *SettingsService) Raw(key string) (string, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	if settingKeys[key] == kindList {
		if list := s.configStore.GetStringSlice(key); list != nil {
			return strings.Join(list, ", "), true
		}
	}
	val, ok := s.configStore.Get(key)
	if !ok {
		return "", false
	}
	return fmt.Sprint(val), true
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func parseSetting(kind valueKind, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", value)
		}
		if n <= 0 {
			return nil, fmt.Errorf("must be positive, got %d", n)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", value)
		}
		if f <= 0 {
			return nil, fmt.Errorf("must be positive, got %g", f)
		}
		return f, nil
	case kindList:
		return splitList(value), nil
	case kindDate:
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
		}
		return value, nil
	default:
		return value, nil
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getList(key string, defaultVal []string) []string {
	if _, exists := s.configStore.Get(key); !exists {
		return append([]string(nil), defaultVal...)
	}
	return s.configStore.GetStringSlice(key)
}

func (s *SettingsService) getDate(key string, defaultVal time.Time) (time.Time, error) {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal, nil
	}
	t, err := time.Parse(domain.DateLayout, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: expected YYYY-MM-DD, got %q", domain.ErrInvalidInput, key, val)
	}
	return t, nil
}
