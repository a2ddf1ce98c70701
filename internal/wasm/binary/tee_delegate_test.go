package binary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type errDelegate struct {
	BaseDelegate
	err error
}

func (e errDelegate) BeginModule(version uint32) error { return e.err }

func TestTeeDelegate_ForwardsToBothOnSuccess(t *testing.T) {
	a := &recordingDelegate{}
	b := &recordingDelegate{}
	tee := TeeDelegate{A: a, B: b}
	require.NoError(t, tee.BeginModule(1))
	require.Equal(t, []string{"BeginModule"}, a.events)
	require.Equal(t, []string{"BeginModule"}, b.events)
}

func TestTeeDelegate_StopsAtFirstError(t *testing.T) {
	want := errors.New("boom")
	a := errDelegate{err: want}
	b := &recordingDelegate{}
	tee := TeeDelegate{A: a, B: b}
	err := tee.BeginModule(1)
	require.Equal(t, want, err)
	require.Empty(t, b.events)
}

func TestTeeDelegate_OnErrorOrsResults(t *testing.T) {
	tee := TeeDelegate{A: BaseDelegate{}, B: stubHandledDelegate{}}
	require.True(t, tee.OnError("x"))

	tee = TeeDelegate{A: BaseDelegate{}, B: BaseDelegate{}}
	require.False(t, tee.OnError("x"))
}

type stubHandledDelegate struct {
	BaseDelegate
}

func (stubHandledDelegate) OnError(message string) bool { return true }
