package whilst

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/whilst/pkg/rop"
)

func TestAwait_Success(t *testing.T) {
	t.Parallel()

	res := Await(context.Background(),
		func(count int, next Next) {
			go next(nil, "page", count)
		},
		stopAfter(3))

	assert.True(t, res.IsSuccess())
	assert.Equal(t, 4, res.Result().Count)
	assert.Equal(t, []any{"page", 3}, res.Result().Results)
}

func TestAwait_Failure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	res := Await(context.Background(),
		func(count int, next Next) {
			if count == 2 {
				next(boom)
				return
			}
			next(nil)
		},
		stopAfter(10))

	assert.True(t, res.IsFailure())
	assert.Same(t, boom, res.Err())
}

func TestAwait_InvalidArgument(t *testing.T) {
	t.Parallel()

	res := Await(context.Background(), nil, stopAfter(0))
	assert.True(t, res.IsFailure())
	assert.True(t, rop.IsInvalidArgument(res.Err()))

	res = Await(context.Background(), func(count int, next Next) { next(nil) }, nil)
	assert.True(t, res.IsFailure())
	assert.True(t, rop.IsInvalidArgument(res.Err()))
}

func TestAwait_ContextEndsFirst(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := Await(ctx,
		func(count int, next Next) {
			// never reports back
		},
		stopAfter(0))

	assert.True(t, res.IsCancel())
	assert.False(t, res.IsFailure())
	assert.True(t, rop.IsCancellationError(res.Err()))
}
