package sia

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// ParamsManager orchestrates the nominal and variable parameter-set
// lifecycles per building type: load from disk when sets exist, otherwise
// generate, persist and re-load so downstream consumers always see the
// file-backed representation regardless of the generate-vs-load path.
//
// The two tracks share one in-memory cache keyed by building type; loading
// one track replaces any previously cached entries for that type. The
// generation lock serializes first-time load-or-create so concurrent
// callers never race to write the same files.
type ParamsManager struct {
	factory *ParametersFactory
	dir     string
	limits  LimitsConfig
	rng     *rand.Rand

	mu    sync.Mutex
	cache map[string][]*Parameters
}

// NewParamsManager creates a manager persisting to dir.
func NewParamsManager(factory *ParametersFactory, dir string, limits LimitsConfig, rng *rand.Rand) *ParamsManager {
	return &ParamsManager{
		factory: factory,
		dir:     dir,
		limits:  limits,
		rng:     rng,
		cache:   make(map[string][]*Parameters),
	}
}

func nominalFileName(bldgType string) string {
	return fmt.Sprintf("%s_NOM.csvy", bldgType)
}

func variableFileName(bldgType string, id int) string {
	return fmt.Sprintf("%s_VAR_%d.csvy", bldgType, id)
}

// CreateOrLoadNominal ensures exactly one nominal parameter set per given
// building type is cached, generating and persisting it on first use.
func (m *ParamsManager) CreateOrLoadNominal(types []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, bldgType := range types {
		sets, err := m.loadSets(filepath.Join(m.dir, nominalFileName(bldgType)))
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			p, err := m.factory.Generate(bldgType, false, bldgType+"_NOM")
			if err != nil {
				return fmt.Errorf("generating nominal parameters for %s: %w", bldgType, err)
			}
			path := filepath.Join(m.dir, nominalFileName(bldgType))
			if err := SaveParams(path, p); err != nil {
				return err
			}
			// Re-load so the cached object carries the file-backed profile
			// representation, same as the pure-load path.
			sets, err = m.loadSets(path)
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				return fmt.Errorf("nominal parameter set for %s vanished after save", bldgType)
			}
		}
		m.cache[bldgType] = sets
	}
	return nil
}

// CreateOrLoadVariable ensures the configured number of variable parameter
// sets per given building type is cached, generating and persisting
// numbered sets on first use.
func (m *ParamsManager) CreateOrLoadVariable(types []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, bldgType := range types {
		pattern := filepath.Join(m.dir, fmt.Sprintf("%s_VAR_*.csvy", bldgType))
		sets, err := m.loadGlob(pattern)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			count, err := m.variableSetCount(bldgType)
			if err != nil {
				return err
			}
			for id := 1; id <= count; id++ {
				name := fmt.Sprintf("%s_VAR_%d", bldgType, id)
				p, err := m.factory.Generate(bldgType, true, name)
				if err != nil {
					return fmt.Errorf("generating variable parameters for %s: %w", bldgType, err)
				}
				if err := SaveParams(filepath.Join(m.dir, variableFileName(bldgType, id)), p); err != nil {
					return err
				}
			}
			sets, err = m.loadGlob(pattern)
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				return fmt.Errorf("variable parameter sets for %s vanished after save", bldgType)
			}
		}
		m.cache[bldgType] = sets
	}
	return nil
}

func (m *ParamsManager) variableSetCount(bldgType string) (int, error) {
	bt, err := m.factory.data.BuildingTypeByName(bldgType)
	if err != nil {
		return 0, err
	}
	if bt.IsResidential() {
		return m.limits.MaxVariableSetsResidential, nil
	}
	return m.limits.MaxVariableSetsNonResidential, nil
}

// ParamSet returns a parameter set for a building type: the single cached
// set when one exists, a uniformly random choice when several do, and a
// lookup error naming the type when none is cached.
func (m *ParamsManager) ParamSet(bldgType string) (*Parameters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sets := m.cache[bldgType]
	switch len(sets) {
	case 0:
		return nil, fmt.Errorf("no parameter sets cached for building type %q; call CreateOrLoadNominal or CreateOrLoadVariable first", bldgType)
	case 1:
		return sets[0], nil
	default:
		return sets[m.rng.Intn(len(sets))], nil
	}
}

// loadSets loads the parameter set at path, returning an empty slice when
// the file does not exist.
func (m *ParamsManager) loadSets(path string) ([]*Parameters, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logrus.Warnf("parameter set file %s not found, will generate", path)
		return nil, nil
	}
	p, err := LoadParams(path)
	if err != nil {
		return nil, err
	}
	return []*Parameters{p}, nil
}

// loadGlob loads every parameter set matching pattern. Order is not
// guaranteed, which is irrelevant since selection is randomized anyway.
func (m *ParamsManager) loadGlob(pattern string) ([]*Parameters, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", pattern, err)
	}
	if len(paths) == 0 {
		logrus.Warnf("no parameter set files match %s, will generate", pattern)
		return nil, nil
	}
	sets := make([]*Parameters, 0, len(paths))
	for _, path := range paths {
		p, err := LoadParams(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, p)
	}
	return sets, nil
}
