package logging

import "context"

type detailsKey struct{}

// ContextWith returns a context carrying lds after the details ctx already carries.
// Log calls made with the returned context include all of them.
func ContextWith(ctx context.Context, lds ...Detail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	prev := detailsOf(ctx)
	ds := make([]Detail, 0, len(prev)+len(lds))
	ds = append(append(ds, prev...), lds...)
	return context.WithValue(ctx, detailsKey{}, ds)
}

func detailsOf(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	ds, _ := ctx.Value(detailsKey{}).([]Detail)
	return ds
}
