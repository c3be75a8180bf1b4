package fjsp_test

import (
	"testing"

	"github.com/katalvlaran/fjspdd/fjsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		job, task, machine, proc int
	}{
		{0, 0, 0, 1},
		{1, 2, 3, 42},
		{255, 255, 255, 1},
		{7, 9, 11, 1 << 30},
	}
	for _, c := range cases {
		d, err := fjsp.Pack(c.job, c.task, c.machine, c.proc)
		require.NoError(t, err)

		job, task, machine, proc := d.Unpack()
		assert.Equal(t, c.job, job)
		assert.Equal(t, c.task, task)
		assert.Equal(t, c.machine, machine)
		assert.Equal(t, c.proc, proc)
	}
}

func TestPackRejectsOversizedFields(t *testing.T) {
	_, err := fjsp.Pack(256, 0, 0, 1)
	assert.ErrorIs(t, err, fjsp.ErrFieldOverflow)

	_, err = fjsp.Pack(0, 0, 0, -1)
	assert.ErrorIs(t, err, fjsp.ErrFieldOverflow)
}
