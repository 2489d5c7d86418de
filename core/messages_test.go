package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubmitCmdWrapsCommand(t *testing.T) {
	require.Nil(t, SubmitCmd(nil))
	msg := SubmitCmd(CloseWindow{ID: 2})()
	require.Equal(t, CommandMsg{Command: CloseWindow{ID: 2}}, msg)
}

func TestErrorCmd(t *testing.T) {
	require.Equal(t, StatusMsg{Text: "boom", IsErr: true}, ErrorCmd(errors.New("boom"))())
	require.Equal(t, StatusMsg{}, ErrorCmd(nil)())
	require.Equal(t, StatusMsg{Text: "ok"}, StatusCmd("ok")())
}
