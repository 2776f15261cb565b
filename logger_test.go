package bloom

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := StdLogger(log.New(buf, "", 0))
	logger("sized", 10, 20)
	require.Equal(t, "sized 10 20\n", buf.String())
}
