package ordkit

import (
	"context"

	"go.llib.dev/capkit/pkg/equivkit"
	"go.llib.dev/capkit/pkg/errorkit"
	"go.llib.dev/capkit/pkg/logging"
	"go.llib.dev/capkit/pkg/reflectkit"
)

const (
	ErrNonReflexive     errorkit.Error = "ErrNonReflexive"
	ErrNonAntisymmetric errorkit.Error = "ErrNonAntisymmetric"
	ErrNonTransitive    errorkit.Error = "ErrNonTransitive"
)

// Check verifies the ordering laws over the sample:
// every item compares Equals to itself,
// swapping the operands reverses the order,
// and Le is transitive.
// The equivalence derived from Cmp is checked as well.
func (o Ordered[T]) Check() error {
	ctx := checkContext(o.sample)
	for i, x := range o.sample {
		if got := o.cmp(x, x); got != Equals {
			return violation(ctx, "reflexivity", ErrNonReflexive.F("cmp(sample[%d], sample[%d]) is %s", i, i, got))
		}
	}
	for i, x := range o.sample {
		for j := i + 1; j < len(o.sample); j++ {
			xy, yx := o.cmp(x, o.sample[j]), o.cmp(o.sample[j], x)
			if xy != yx.Reverse() {
				return violation(ctx, "antisymmetry", ErrNonAntisymmetric.F(
					"cmp(sample[%d], sample[%d]) is %s, but cmp(sample[%d], sample[%d]) is %s", i, j, xy, j, i, yx))
			}
		}
	}
	bounded := o.sample
	if limit := equivkit.LoadCheckConfig().MaxSample; limit < len(bounded) {
		bounded = bounded[:limit]
	}
	for i, x := range bounded {
		for j, y := range bounded {
			if !o.Le(x, y) {
				continue
			}
			for k, z := range bounded {
				if o.Le(y, z) && !o.Le(x, z) {
					return violation(ctx, "transitivity", ErrNonTransitive.F(
						"sample[%d] <= sample[%d] and sample[%d] <= sample[%d], but not sample[%d] <= sample[%d]", i, j, j, k, i, k))
				}
			}
		}
	}
	return o.Equivalence().Check()
}

func checkContext[T any](sample []T) context.Context {
	return logging.ContextWith(context.Background(),
		logging.Field("type", reflectkit.SymbolicName[T]()),
		logging.Field("sample", len(sample)))
}

func violation(ctx context.Context, law string, err error) error {
	logging.Warn(ctx, "order law violated", logging.Field("law", law), logging.ErrField(err))
	return err
}
