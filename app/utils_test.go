package app

import (
	"bytes"
	"sync"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/stash"
	actx "go.hackfix.me/stash/app/context"
)

type testApp struct {
	*App
	stdout, stderr *bytes.Buffer
	env            *mockEnv
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	// An injected memory-driver store keeps state across command runs
	// within a single test.
	st, err := stash.New(stash.WithDriver(stash.DriverMemory))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &mockEnv{env: map[string]string{}}
	a := New(
		WithFDs(&bytes.Buffer{}, stdout, stderr),
		WithFS(memoryfs.New()),
		WithLogger(false, false),
		WithEnv(env),
		WithStore(st),
	)

	return &testApp{App: a, stdout: stdout, stderr: stderr, env: env}
}

func (ta *testApp) Run(args ...string) error {
	ta.stdout.Reset()
	ta.stderr.Reset()
	return ta.App.Run(args)
}

type mockEnv struct {
	mx  sync.RWMutex
	env map[string]string
}

var _ actx.Environment = &mockEnv{}

func (me *mockEnv) Get(key string) string {
	me.mx.RLock()
	defer me.mx.RUnlock()
	return me.env[key]
}

func (me *mockEnv) Set(key, val string) error {
	me.mx.Lock()
	defer me.mx.Unlock()
	me.env[key] = val
	return nil
}
