package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []int{36, 17, 1, 14, 16, 18, 34, 72, 100}, []int{17}, true))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph"))
	require.Contains(t, out, "16 - 3")
	require.NotContains(t, out, "17 - ")
}

func TestCommand(t *testing.T) {
	cmd := Command()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--keys", "1,2,3", "--bst"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, buf.String(), "3 - 0")
	require.Contains(t, buf.String(), "1 - 2")

	cmd = Command()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}
