package equivkit

import (
	"context"
	"errors"

	"github.com/joeshaw/envdecode"

	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/capkit/pkg/reflectkit"
	"go.llib.dev/capkit/pkg/tristate"
	"go.llib.dev/capkit/pkg/zerokit"
)

const (
	ErrNonReflexive  errorkit.Error = "ErrNonReflexive"
	ErrNonSymmetric  errorkit.Error = "ErrNonSymmetric"
	ErrNonTransitive errorkit.Error = "ErrNonTransitive"

	ErrPartialNonReflexive  errorkit.Error = "ErrPartialNonReflexive"
	ErrPartialNonSymmetric  errorkit.Error = "ErrPartialNonSymmetric"
	ErrPartialNonTransitive errorkit.Error = "ErrPartialNonTransitive"
)

const defaultCheckMaxSample = 64

// CheckConfig bounds the sample based law checks.
type CheckConfig struct {
	// MaxSample caps how many sample items take part in the triple-wise checks.
	MaxSample int `env:"CAPKIT_CHECK_MAX_SAMPLE,default=64"`
}

// LoadCheckConfig reads the CheckConfig from the environment.
func LoadCheckConfig() CheckConfig {
	var c CheckConfig
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		logging.Warn(context.Background(), "invalid law check configuration", logging.ErrField(err))
	}
	if c.MaxSample <= 0 {
		c.MaxSample = 0
	}
	c.MaxSample = zerokit.Coalesce(c.MaxSample, defaultCheckMaxSample)
	return c
}

// Laws selects which equivalence laws a Check verifies.
type Laws struct {
	Reflexive  bool
	Symmetric  bool
	Transitive bool
}

// AllLaws is the default selection.
var AllLaws = Laws{Reflexive: true, Symmetric: true, Transitive: true}

type lawErrors struct {
	reflexive, symmetric, transitive errorkit.Error
}

var (
	totalLawErrors   = lawErrors{ErrNonReflexive, ErrNonSymmetric, ErrNonTransitive}
	partialLawErrors = lawErrors{ErrPartialNonReflexive, ErrPartialNonSymmetric, ErrPartialNonTransitive}
)

// checkLaws verifies the selected laws of eq over sample.
// Pairs that are Incomparable are left out, so a total relation is checked on every pair.
func checkLaws[T any](eq func(x, y T) tristate.Bool, sample []T, laws Laws, errs lawErrors) error {
	ctx := logging.ContextWith(context.Background(),
		logging.Field("type", reflectkit.SymbolicName[T]()),
		logging.Field("sample", len(sample)))
	cfg := LoadCheckConfig()
	if laws.Reflexive {
		for i, x := range sample {
			if eq(x, x) == tristate.False {
				return violation(ctx, "reflexivity", errs.reflexive.F("sample[%d] is not equal to itself", i))
			}
		}
	}
	if laws.Symmetric {
		for i, x := range sample {
			for j := i + 1; j < len(sample); j++ {
				xy, yx := eq(x, sample[j]), eq(sample[j], x)
				if xy.Definite() && yx.Definite() && xy != yx {
					return violation(ctx, "symmetry", errs.symmetric.F(
						"eq(sample[%d], sample[%d]) is %s, but eq(sample[%d], sample[%d]) is %s", i, j, xy, j, i, yx))
				}
			}
		}
	}
	if laws.Transitive {
		bounded := sample
		if cfg.MaxSample < len(bounded) {
			bounded = bounded[:cfg.MaxSample]
		}
		for i, x := range bounded {
			for j, y := range bounded {
				if eq(x, y) != tristate.True {
					continue
				}
				for k, z := range bounded {
					if eq(y, z) == tristate.True && eq(x, z) == tristate.False {
						return violation(ctx, "transitivity", errs.transitive.F(
							"sample[%d] = sample[%d] and sample[%d] = sample[%d], but sample[%d] != sample[%d]", i, j, j, k, i, k))
					}
				}
			}
		}
	}
	return nil
}

func violation(ctx context.Context, law string, err error) error {
	logging.Warn(ctx, "law violated", logging.Field("law", law), logging.ErrField(err))
	return err
}
