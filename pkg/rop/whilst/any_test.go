package whilst

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/whilst/pkg/rop"
)

func TestDoWhilstAny_NonCallableArguments(t *testing.T) {
	t.Parallel()

	worker := func(count int, next Next) { next(nil) }
	predicate := func(count int, check Check) { check(nil, false) }
	done := func(err error, results ...any) {}

	values := []any{nil, "beep", 5, 3.14, true, []int{1}, map[string]int{}, struct{}{}, func() {}, Worker(nil)}

	for _, v := range values {
		t.Run(fmt.Sprintf("%T", v), func(t *testing.T) {
			positions := []struct {
				name string
				call func() error
			}{
				{rop.FirstArgument, func() error { return DoWhilstAny(v, predicate, done, nil) }},
				{rop.SecondArgument, func() error { return DoWhilstAny(worker, v, done, nil) }},
				{rop.ThirdArgument, func() error { return DoWhilstAny(worker, predicate, v, nil) }},
			}
			for _, p := range positions {
				err := p.call()
				require.Error(t, err)

				var e *rop.ErrInvalidArgument
				require.True(t, errors.As(err, &e))
				assert.Equal(t, p.name, e.Name)
				assert.Contains(t, err.Error(), fmt.Sprintf("`%v`", v))
			}
		})
	}
}

func TestDoWhilstAny_AcceptedShapes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		worker    any
		predicate any
	}{
		"named types": {
			Worker(func(count int, next Next) { next(nil, count) }),
			Predicate(func(count int, check Check) { check(nil, count < 2) }),
		},
		"unnamed with named handlers": {
			func(count int, next Next) { next(nil, count) },
			func(count int, check Check) { check(nil, count < 2) },
		},
		"plain funcs": {
			func(count int, next func(error, ...any)) { next(nil, count) },
			func(count int, check func(error, bool)) { check(nil, count < 2) },
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := newRecorder()
			err := DoWhilstAny(tc.worker, tc.predicate, rec.done, nil)
			require.NoError(t, err)
			assert.Equal(t, 1, rec.calls)
			assert.Equal(t, []any{1}, rec.results)
		})
	}
}

func TestDoWhilstAny_ThisArg(t *testing.T) {
	t.Parallel()

	type service struct{ attempts int }
	svc := &service{}

	worker := func(this any, count int, next Next) {
		s := this.(*service)
		s.attempts++
		next(nil, s.attempts)
	}
	predicate := func(count int, check Check) {
		check(nil, count < 3)
	}

	var got []any
	err := DoWhilstAny(worker, predicate, Done(func(err error, results ...any) {
		require.NoError(t, err)
		got = results
	}), svc)
	require.NoError(t, err)

	assert.Equal(t, 3, svc.attempts)
	assert.Equal(t, []any{3}, got)
}
