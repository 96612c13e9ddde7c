package hooks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/msgkit/pkg/hooks"
	"github.com/arthur-debert/msgkit/pkg/message"
)

func TestContextChainRunsBeforeGlobal(t *testing.T) {
	rec := &recorder{}
	global := hooks.NewChain()
	require.NoError(t, global.Register("global", rec.hook("global", false)))

	ctx := hooks.WithHook(context.Background(), "outer", rec.hook("outer", false))
	ctx = hooks.WithHook(ctx, "inner", rec.hook("inner", false))

	assert.False(t, hooks.Dispatch(ctx, global, hello, message.KindInformational, seq))
	assert.Equal(t, []string{"outer", "inner", "global"}, rec.names())
}

func TestContextChainShortCircuitsGlobal(t *testing.T) {
	rec := &recorder{}
	global := hooks.NewChain()
	require.NoError(t, global.Register("global", rec.hook("global", true)))

	ctx := hooks.WithHook(context.Background(), "capture", rec.hook("capture", true))

	assert.True(t, hooks.Dispatch(ctx, global, hello, message.KindInformational, seq))
	assert.Equal(t, []string{"capture"}, rec.names())
}

func TestWithHookDoesNotLeakToParent(t *testing.T) {
	rec := &recorder{}
	parent := context.Background()
	child := hooks.WithHook(parent, "child", rec.hook("child", true))

	assert.Empty(t, hooks.Scoped(parent))
	require.Len(t, hooks.Scoped(child), 1)
	assert.Equal(t, "child", hooks.Scoped(child)[0].Name)

	assert.False(t, hooks.Dispatch(parent, nil, hello, message.KindInformational, seq))
	assert.Empty(t, rec.names())
}

func TestWithHookNilIsNoop(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, hooks.WithHook(ctx, "nil", nil))
}

func TestContextChainsAreIsolatedAcrossGoroutines(t *testing.T) {
	recs := make([]*recorder, 8)
	var g errgroup.Group
	for i := range recs {
		recs[i] = &recorder{}
		rec := recs[i]
		g.Go(func() error {
			ctx := hooks.WithHook(context.Background(), "own", rec.hook("own", true))
			for j := 0; j < 50; j++ {
				hooks.Dispatch(ctx, nil, hello, message.KindInformational, seq)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, rec := range recs {
		assert.Len(t, rec.names(), 50)
	}
}

func TestGlobalRegister(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, hooks.Register("global-test", rec.hook("global-test", true)))
	t.Cleanup(func() { _ = hooks.Unregister("global-test") })

	assert.Contains(t, hooks.Global().Names(), "global-test")
	assert.True(t, hooks.Dispatch(context.Background(), hooks.Global(), hello, message.KindInformational, seq))
	assert.Equal(t, []string{"global-test"}, rec.names())
}
